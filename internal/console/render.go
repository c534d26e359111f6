package console

import (
	"fmt"
	"text/tabwriter"
	"time"

	"byaura/internal/domain"
)

const messageSummaryLength = 120

func (c *Console) money(amount float64) string {
	return c.printer.Sprintf("%.2f €", amount)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006 15:04")
}

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *Console) renderStats(stats *domain.DashboardStats) {
	w := c.table()
	fmt.Fprintf(w, "Kullanıcılar\t%d\n", stats.TotalUsers)
	fmt.Fprintf(w, "Ödemeler\t%d\n", stats.TotalPayments)
	fmt.Fprintf(w, "Toplam gelir\t%s\n", c.money(stats.TotalRevenue))
	fmt.Fprintf(w, "Bekleyen ödemeler\t%d\n", stats.PendingPayments)
	fmt.Fprintf(w, "Tamamlanan ödemeler\t%d\n", stats.CompletedPayments)
	fmt.Fprintf(w, "Etkinlikler\t%d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Aktif etkinlikler\t%d\n", stats.ActiveEvents)
	w.Flush()
}

func (c *Console) renderUsers(users []*domain.User) {
	w := c.table()
	fmt.Fprintln(w, "ID\tE-POSTA\tAD\tROL\tAKTİF\tKAYIT")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n",
			u.ID, u.Email, u.DisplayName(), u.Role, u.IsActive, formatDate(u.CreatedAt))
	}
	w.Flush()
}

func (c *Console) renderPayments(payments []*domain.Payment) {
	w := c.table()
	fmt.Fprintln(w, "ID\tKULLANICI\tTUTAR\tDURUM\tYÖNTEM\tTARİH")
	for _, p := range payments {
		payer := p.PayerEmail()
		if payer == "" {
			payer = fmt.Sprintf("#%d", p.UserID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s [%s]\t%s\t%s\n",
			p.ID, payer, c.money(p.Amount), p.Status.Label(), p.Status.BadgeClass(),
			p.PaymentMethod, formatDate(p.CreatedAt))
	}
	w.Flush()
}

func (c *Console) renderEvents(events []*domain.Event) {
	w := c.table()
	fmt.Fprintln(w, "ID\tBAŞLIK\tBAŞLANGIÇ\tBİTİŞ\tYER\tKONTENJAN\tFİYAT\tAKTİF")
	for _, e := range events {
		end := "-"
		if e.DateEnd != nil {
			end = formatDate(*e.DateEnd)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d/%d\t%s\t%t\n",
			e.ID, e.Title, formatDate(e.DateStart), end, e.Location,
			e.ParticipantsCount, e.Capacity, c.money(e.Price), e.IsActive)
	}
	w.Flush()
}

func (c *Console) renderProducts(products []*domain.Product) {
	w := c.table()
	fmt.Fprintln(w, "ID\tAD\tSKU\tFİYAT\tSTOK\tSIRA\tAKTİF")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%t\n",
			p.ID, p.Name, p.SKU, c.money(p.Price), p.Stock, p.SortOrder, p.IsActive)
	}
	w.Flush()
}

func (c *Console) renderMessages(messages []*domain.ContactMessage) {
	w := c.table()
	fmt.Fprintln(w, "ID\tGÖNDEREN\tE-POSTA\tKONU\tMESAJ\tTARİH")
	for _, m := range messages {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Name, m.Email, m.Subject, m.Summary(messageSummaryLength), formatDate(m.CreatedAt))
	}
	w.Flush()
}

func (c *Console) renderMessageDetail(m *domain.ContactMessage) {
	fmt.Fprintf(c.out, "#%d %s <%s>\n", m.ID, m.Name, m.Email)
	fmt.Fprintf(c.out, "Konu: %s\n", m.Subject)
	fmt.Fprintf(c.out, "Tarih: %s\n\n", formatDate(m.CreatedAt))
	fmt.Fprintln(c.out, m.Message)
}

func (c *Console) renderContent(content *domain.WebContent) {
	w := c.table()
	fmt.Fprintf(w, "events_title\t%s\n", content.EventsTitle)
	fmt.Fprintf(w, "events_body\t%s\n", content.EventsBody)
	fmt.Fprintf(w, "events_cta_text\t%s\n", content.EventsCTAText)
	fmt.Fprintf(w, "events_cta_link\t%s\n", content.EventsCTALink)
	fmt.Fprintf(w, "shop_title\t%s\n", content.ShopTitle)
	fmt.Fprintf(w, "shop_hero_image\t%s\n", content.ShopHeroImage)
	w.Flush()
}
