package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"byaura/internal/domain"
)

func (c *Console) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("kullanım: login <e-posta>")
	}

	password := c.prompt("Şifre")
	session, err := c.factory.GetAuthService().Login(ctx, args[0], password)
	if err != nil {
		return err
	}

	c.Notify("Hoş geldiniz, " + session.User.DisplayName())
	return nil
}

func (c *Console) whoami() error {
	session := c.factory.GetSessionStore().Current()
	if session == nil {
		return domain.ErrNotAuthenticated
	}

	fmt.Fprintf(c.out, "%s <%s> (%s)\n", session.User.DisplayName(), session.User.Email, session.User.Role)
	return nil
}

func (c *Console) changePassword(ctx context.Context) error {
	current := c.prompt("Mevcut şifre")
	newPassword := c.prompt("Yeni şifre")
	confirm := c.prompt("Yeni şifre (tekrar)")

	if err := c.factory.GetAuthService().ChangePassword(ctx, current, newPassword, confirm); err != nil {
		return err
	}

	c.Notify("Şifre değiştirildi.")
	return nil
}

func (c *Console) stats(ctx context.Context) error {
	stats, err := c.factory.GetDashboardService().Stats(ctx)
	if err != nil {
		return err
	}
	c.renderStats(stats)
	return nil
}

func (c *Console) users(ctx context.Context, args []string) error {
	svc := c.factory.GetUserService()
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		users, err := svc.ListUsers(ctx)
		if err != nil {
			return err
		}
		c.renderUsers(users)
		return nil
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		user, err := svc.GetUser(ctx, id)
		if err != nil {
			return err
		}
		c.renderUsers([]*domain.User{user})
		return nil
	case "new":
		draft := domain.UserDraft{
			Email:    c.prompt("E-posta"),
			FullName: c.prompt("Ad soyad"),
			Password: c.prompt("Şifre"),
			Role:     domain.UserRole(c.prompt("Rol (admin/user)")),
		}
		user, err := svc.CreateUser(ctx, draft)
		if user != nil {
			c.Notify(fmt.Sprintf("Kullanıcı oluşturuldu: #%d %s", user.ID, user.Email))
		}
		return err
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		values, err := parseAssignments(rest[1:])
		if err != nil {
			return err
		}
		current, err := svc.GetUser(ctx, id)
		if err != nil {
			return err
		}
		update := domain.UserUpdate{Email: current.Email, FullName: current.FullName}
		if v, ok := values["email"]; ok {
			update.Email = v
		}
		if v, ok := values["full_name"]; ok {
			update.FullName = v
		}
		user, err := svc.UpdateUser(ctx, id, update)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Kullanıcı güncellendi: #%d", user.ID))
		return nil
	case "toggle-role":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		user, err := svc.ToggleUserRole(ctx, id)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Yeni rol: %s", user.Role))
		return nil
	case "toggle-active":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		user, err := svc.ToggleUserActive(ctx, id)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Aktif: %t", user.IsActive))
		return nil
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if !c.confirm(fmt.Sprintf("#%d numaralı kullanıcı silinsin mi?", id)) {
			return nil
		}
		if err := svc.DeleteUser(ctx, id); err != nil {
			return err
		}
		c.Notify("Kullanıcı silindi.")
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: users %s", sub)
	}
}

func (c *Console) payments(ctx context.Context, args []string) error {
	svc := c.factory.GetPaymentService()
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		filter := ""
		if len(rest) > 0 {
			filter = rest[0]
		}
		payments, err := svc.ListPayments(ctx, filter)
		if err != nil {
			return err
		}
		c.renderPayments(payments)
		return nil
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		payment, err := svc.GetPayment(ctx, id)
		if err != nil {
			return err
		}
		c.renderPayments([]*domain.Payment{payment})
		return nil
	case "new":
		values, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		draft := domain.PaymentDraft{
			Description:   values["description"],
			PaymentMethod: values["method"],
		}
		if v, ok := values["user_id"]; ok {
			draft.UserID, _ = strconv.ParseInt(v, 10, 64)
		}
		if v, ok := values["amount"]; ok {
			draft.Amount, _ = strconv.ParseFloat(v, 64)
		}
		payment, err := svc.CreatePayment(ctx, draft)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Ödeme oluşturuldu: #%d", payment.ID))
		return nil
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		values, err := parseAssignments(rest[1:])
		if err != nil {
			return err
		}
		update := domain.PaymentUpdate{
			Status:      domain.PaymentStatus(values["status"]),
			Description: values["description"],
		}
		payment, err := svc.UpdatePayment(ctx, id, update)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Ödeme güncellendi: #%d %s", payment.ID, payment.Status.Label()))
		return nil
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if !c.confirm(fmt.Sprintf("#%d numaralı ödeme silinsin mi?", id)) {
			return nil
		}
		if err := svc.DeletePayment(ctx, id); err != nil {
			return err
		}
		c.Notify("Ödeme silindi.")
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: payments %s", sub)
	}
}

func (c *Console) events(ctx context.Context, args []string) error {
	svc := c.factory.GetEventService()
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		events, err := svc.ListEvents(ctx)
		if err != nil {
			return err
		}
		c.renderEvents(events)
		return nil
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		event, err := svc.GetEvent(ctx, id)
		if err != nil {
			return err
		}
		c.renderEvents([]*domain.Event{event})
		return nil
	case "save":
		values, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		draft, err := eventDraftFrom(values)
		if err != nil {
			return err
		}
		event, err := svc.SaveEvent(ctx, draft)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Etkinlik kaydedildi: #%d %s", event.ID, event.Title))
		return nil
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if !c.confirm(fmt.Sprintf("#%d numaralı etkinlik silinsin mi?", id)) {
			return nil
		}
		if err := svc.DeleteEvent(ctx, id); err != nil {
			return err
		}
		c.Notify("Etkinlik silindi.")
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: events %s", sub)
	}
}

func eventDraftFrom(values map[string]string) (domain.EventDraft, error) {
	var draft domain.EventDraft

	if v, ok := values["id"]; ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return draft, fmt.Errorf("geçersiz ID formatı: %s", v)
		}
		draft.ID = id
	}
	draft.Title = values["title"]
	draft.Description = values["description"]
	draft.Location = values["location"]
	draft.ImageURL = values["image"]

	if v, ok := values["date_start"]; ok {
		start, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return draft, fmt.Errorf("geçersiz başlangıç tarihi: %s", v)
		}
		draft.DateStart = start
	}
	if v, ok := values["date_end"]; ok && v != "" {
		end, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return draft, fmt.Errorf("geçersiz bitiş tarihi: %s", v)
		}
		draft.DateEnd = &end
	}
	if v, ok := values["capacity"]; ok {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return draft, fmt.Errorf("geçersiz kapasite: %s", v)
		}
		draft.Capacity = capacity
	}
	if v, ok := values["price"]; ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return draft, fmt.Errorf("geçersiz fiyat: %s", v)
		}
		draft.Price = price
	}

	return draft, nil
}

func (c *Console) products(ctx context.Context, args []string) error {
	svc := c.factory.GetProductService()
	autosave := c.factory.GetProductAutoSave()
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		products, err := svc.ListProducts(ctx)
		if err != nil {
			return err
		}
		c.renderProducts(products)
		return nil
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		product, err := svc.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		c.renderProducts([]*domain.Product{product})
		return nil
	case "new":
		autosave.OpenForm()
		c.Notify("Yeni ürün formu açıldı. Alanları 'products set' ile doldurun.")
		return nil
	case "set":
		values, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		draft, err := productDraftFrom(autosave.Draft(), values)
		if err != nil {
			return err
		}
		autosave.FieldsChanged(ctx, draft)
		return nil
	case "upload":
		if len(rest) != 1 {
			return fmt.Errorf("kullanım: products upload <dosya>")
		}
		file, err := os.Open(rest[0])
		if err != nil {
			return fmt.Errorf("dosya açılamadı: %w", err)
		}
		defer file.Close()

		url, err := svc.UploadProductImage(ctx, filepath.Base(rest[0]), file)
		if err != nil {
			return err
		}
		autosave.ImageUploaded(ctx, url)
		return nil
	case "submit":
		product, err := autosave.Submit(ctx)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Ürün kaydedildi: #%d", product.ID))
		return nil
	case "cancel":
		autosave.CloseForm()
		c.Notify("Ürün formu kapatıldı.")
		return nil
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		values, err := parseAssignments(rest[1:])
		if err != nil {
			return err
		}
		current, err := svc.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		draft, err := productDraftFrom(draftFromProduct(current), values)
		if err != nil {
			return err
		}
		product, err := svc.UpdateProduct(ctx, id, draft)
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Ürün güncellendi: #%d", product.ID))
		return nil
	case "image":
		if len(rest) != 2 {
			return fmt.Errorf("kullanım: products image <id> <url>")
		}
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		product, err := svc.SetProductImage(ctx, id, rest[1])
		if err != nil {
			return err
		}
		c.Notify(fmt.Sprintf("Ürün görseli güncellendi: #%d", product.ID))
		return nil
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if !c.confirm(fmt.Sprintf("#%d numaralı ürün silinsin mi?", id)) {
			return nil
		}
		if err := svc.DeleteProduct(ctx, id); err != nil {
			return err
		}
		c.Notify("Ürün silindi.")
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: products %s", sub)
	}
}

func draftFromProduct(p *domain.Product) domain.ProductDraft {
	return domain.ProductDraft{
		Name:        p.Name,
		SKU:         p.SKU,
		Price:       p.Price,
		Stock:       p.Stock,
		SortOrder:   p.SortOrder,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		IsActive:    p.IsActive,
	}
}

func productDraftFrom(draft domain.ProductDraft, values map[string]string) (domain.ProductDraft, error) {
	if v, ok := values["name"]; ok {
		draft.Name = v
	}
	if v, ok := values["sku"]; ok {
		draft.SKU = v
	}
	if v, ok := values["description"]; ok {
		draft.Description = v
	}
	if v, ok := values["price"]; ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return draft, fmt.Errorf("geçersiz fiyat: %s", v)
		}
		draft.Price = price
	}
	if v, ok := values["stock"]; ok {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return draft, fmt.Errorf("geçersiz stok: %s", v)
		}
		draft.Stock = stock
	}
	if v, ok := values["sort_order"]; ok {
		order, err := strconv.Atoi(v)
		if err != nil {
			return draft, fmt.Errorf("geçersiz sıralama: %s", v)
		}
		draft.SortOrder = order
	}
	if v, ok := values["active"]; ok {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return draft, fmt.Errorf("geçersiz aktiflik değeri: %s", v)
		}
		draft.IsActive = active
	}
	return draft, nil
}

func (c *Console) messages(ctx context.Context, args []string) error {
	svc := c.factory.GetMessageService()
	sub, rest := subcommand(args)

	switch sub {
	case "list":
		messages, err := svc.ListMessages(ctx)
		if err != nil {
			return err
		}
		c.renderMessages(messages)
		return nil
	case "show":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		message, err := svc.ViewMessage(id)
		if err != nil {
			return err
		}
		c.renderMessageDetail(message)
		return nil
	case "close":
		svc.CloseMessage()
		return nil
	case "delete":
		if len(rest) == 0 {
			if !c.confirm("Açık mesaj silinsin mi?") {
				return nil
			}
			if err := svc.DeleteActiveMessage(ctx); err != nil {
				return err
			}
			c.Notify("Mesaj silindi.")
			return nil
		}
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if !c.confirm(fmt.Sprintf("#%d numaralı mesaj silinsin mi?", id)) {
			return nil
		}
		if err := svc.DeleteMessage(ctx, id); err != nil {
			return err
		}
		c.Notify("Mesaj silindi.")
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: messages %s", sub)
	}
}

func (c *Console) content(ctx context.Context, args []string) error {
	svc := c.factory.GetContentService()
	sub, rest := subcommand(args)

	switch sub {
	case "show":
		content, err := svc.GetContent(ctx)
		if err != nil {
			return err
		}
		c.renderContent(content)
		return nil
	case "set":
		values, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		current, err := svc.GetContent(ctx)
		if err != nil {
			return err
		}
		update := domain.WebContentUpdate{
			EventsTitle:   current.EventsTitle,
			EventsBody:    current.EventsBody,
			EventsCTAText: current.EventsCTAText,
			EventsCTALink: current.EventsCTALink,
			ShopTitle:     current.ShopTitle,
			ShopHeroImage: current.ShopHeroImage,
		}
		if v, ok := values["events_title"]; ok {
			update.EventsTitle = v
		}
		if v, ok := values["events_body"]; ok {
			update.EventsBody = v
		}
		if v, ok := values["events_cta_text"]; ok {
			update.EventsCTAText = v
		}
		if v, ok := values["events_cta_link"]; ok {
			update.EventsCTALink = v
		}
		if v, ok := values["shop_title"]; ok {
			update.ShopTitle = v
		}
		if v, ok := values["shop_hero_image"]; ok {
			update.ShopHeroImage = v
		}
		content, err := svc.UpdateContent(ctx, update)
		if err != nil {
			return err
		}
		c.Notify("Site içeriği güncellendi.")
		c.renderContent(content)
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: content %s", sub)
	}
}

func (c *Console) public(ctx context.Context, args []string) error {
	svc := c.factory.GetPublicService()
	sub, rest := subcommand(args)

	switch sub {
	case "content":
		content, err := svc.LoadContent(ctx)
		if err != nil {
			return err
		}
		c.renderContent(content)
		return nil
	case "products":
		products, err := svc.LoadProducts(ctx)
		if err != nil {
			return err
		}
		c.renderProducts(products)
		return nil
	case "contact":
		values, err := parseAssignments(rest)
		if err != nil {
			return err
		}
		draft := domain.ContactDraft{
			Name:    values["name"],
			Email:   values["email"],
			Message: values["message"],
			Subject: values["subject"],
		}
		if err := svc.SendContact(ctx, draft); err != nil {
			return err
		}
		c.Notify("İletişim mesajı gönderildi.")
		return nil
	default:
		return fmt.Errorf("bilinmeyen alt komut: public %s", sub)
	}
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("ID gerekli")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("geçersiz ID formatı: %s", args[0])
	}
	return id, nil
}
