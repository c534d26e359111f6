package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"byaura/pkg/factory"
	"byaura/pkg/logger"
)

// Console is the interactive admin surface. It implements domain.MessageView
// so services can push notifications back into the terminal.
type Console struct {
	factory factory.Factory
	in      *bufio.Scanner
	out     io.Writer
	logger  logger.Logger
	printer *message.Printer
}

func New(f factory.Factory, in io.Reader, out io.Writer) *Console {
	return &Console{
		factory: f,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  f.GetLogger(),
		printer: message.NewPrinter(language.EuropeanSpanish),
	}
}

func (c *Console) Notify(msg string) {
	fmt.Fprintln(c.out, "• "+msg)
}

func (c *Console) NotifyError(msg string) {
	fmt.Fprintln(c.out, "! "+msg)
}

func (c *Console) CloseMessageDetail(id int64) {
	fmt.Fprintf(c.out, "• Mesaj görünümü kapatıldı (#%d)\n", id)
}

func (c *Console) Run(ctx context.Context) error {
	c.factory.GetViewProxy().Bind(c)

	fmt.Fprintln(c.out, "By Aura yönetim paneli. Komutlar için 'help' yazın.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, "byaura> ")
		if !c.in.Scan() {
			return c.in.Err()
		}

		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		cmd := args[0]
		rest := args[1:]

		if cmd == "exit" || cmd == "quit" {
			return nil
		}

		if err := c.dispatch(ctx, cmd, rest); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			c.NotifyError(logger.FormatError(err))
		}
	}
}

func (c *Console) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		c.printHelp()
		return nil
	case "login":
		return c.login(ctx, args)
	case "logout":
		c.factory.GetAuthService().Logout()
		c.Notify("Oturum kapatıldı.")
		return nil
	case "whoami":
		return c.whoami()
	case "password":
		return c.changePassword(ctx)
	case "stats":
		return c.stats(ctx)
	case "users":
		return c.users(ctx, args)
	case "payments":
		return c.payments(ctx, args)
	case "events":
		return c.events(ctx, args)
	case "products":
		return c.products(ctx, args)
	case "messages":
		return c.messages(ctx, args)
	case "content":
		return c.content(ctx, args)
	case "public":
		return c.public(ctx, args)
	default:
		return fmt.Errorf("bilinmeyen komut: %s", cmd)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Komutlar:
  login <e-posta>                       yönetici girişi
  logout | whoami | password | stats
  users     list | show <id> | new | update <id> k=v... | toggle-role <id> | toggle-active <id> | delete <id>
  payments  list [durum] | show <id> | new k=v... | update <id> k=v... | delete <id>
  events    list | show <id> | save [id=<id>] k=v... | delete <id>
  products  list | show <id> | new | set k=v... | upload <dosya> | submit | cancel | update <id> k=v... | delete <id>
  messages  list | show <id> | close | delete [<id>]
  content   show | set k=v...
  public    content | products | contact k=v...
  exit
`)
}

// prompt reads one line of input with a label; empty input is allowed.
func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label+": ")
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// confirm asks before destructive operations.
func (c *Console) confirm(label string) bool {
	answer := strings.ToLower(c.prompt(label + " (e/h)"))
	return answer == "e" || answer == "evet"
}

// parseAssignments turns k=v arguments into a map; values keep any '=' after
// the first one.
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("geçersiz alan ataması: %s", arg)
		}
		values[key] = value
	}
	return values, nil
}
