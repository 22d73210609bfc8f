// Package cli expone la tienda en una terminal interactiva.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/storefront-core/internal/application/cart"
	"github.com/jhoicas/storefront-core/internal/application/catalog"
	"github.com/jhoicas/storefront-core/internal/application/checkout"
	"github.com/jhoicas/storefront-core/internal/application/favorites"
	"github.com/jhoicas/storefront-core/internal/application/session"
	"github.com/jhoicas/storefront-core/pkg/logger"
	"github.com/jhoicas/storefront-core/pkg/money"
)

// TokenVerifier valida el token de sesión para mostrar su vigencia.
type TokenVerifier interface {
	VerifyToken(token string) (userID string, expiresAt time.Time, err error)
}

// Deps dependencias del shell. Tokens puede ser nil.
type Deps struct {
	Session    *session.Store
	Cart       *cart.Store
	Catalog    *catalog.UseCase
	Favorites  *favorites.Store
	Checkout   *checkout.UseCase
	Money      *money.Formatter
	Tokens     TokenVerifier
	ReceiptDir string
	Log        *logger.Logger
}

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

// Shell lee comandos línea a línea y escribe las respuestas en out.
// La entrada se lee en una goroutine propia para que cancelar el contexto
// interrumpa una lectura pendiente; esa goroutine vive hasta el fin de la entrada.
type Shell struct {
	deps     Deps
	in       *bufio.Scanner
	out      io.Writer
	commands map[string]command
	quit     bool

	readerOnce sync.Once
	lines      chan string
	readErr    error // válido solo después de cerrado lines
}

// NewShell construye el shell y registra los comandos.
func NewShell(deps Deps, in io.Reader, out io.Writer) *Shell {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Money == nil {
		deps.Money = money.NewFormatter("fr", "FCFA")
	}
	s := &Shell{deps: deps, in: bufio.NewScanner(in), out: out}
	s.commands = s.routes()
	return s
}

// Run procesa comandos hasta "quit", fin de la entrada o cancelación de ctx.
// Los errores de cada comando se muestran y el shell sigue.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("Bienvenido. Escriba \"help\" para ver los comandos.\n")
	for !s.quit {
		s.printf("> ")
		line, ok := s.readLine(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.readErr
		}
		s.Exec(ctx, line)
	}
	return nil
}

// Exec ejecuta una sola línea de comando.
func (s *Shell) Exec(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	cmd, ok := s.commands[name]
	if !ok {
		s.printf("Comando desconocido: %s. Escriba \"help\".\n", fields[0])
		return
	}
	if err := cmd.run(ctx, fields[1:]); err != nil {
		s.deps.Log.Debug().Err(err).Str("command", name).Msg("comando fallido")
		s.printError(err)
	}
}

func (s *Shell) help(_ context.Context, _ []string) error {
	names := make([]string, 0, len(s.commands))
	for n := range s.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		c := s.commands[n]
		s.printf("  %-26s %s\n", c.usage, c.help)
	}
	return nil
}

func (s *Shell) exit(_ context.Context, _ []string) error {
	s.quit = true
	s.printf("Hasta pronto.\n")
	return nil
}

// ── helpers de E/S ────────────────────────────────────────────────────────────

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) startReader() {
	s.readerOnce.Do(func() {
		s.lines = make(chan string)
		go func() {
			defer close(s.lines)
			for s.in.Scan() {
				s.lines <- s.in.Text()
			}
			s.readErr = s.in.Err()
		}()
	})
}

// readLine espera la próxima línea. false si se acabó la entrada o se canceló ctx.
func (s *Shell) readLine(ctx context.Context) (string, bool) {
	s.startReader()
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

// ask muestra la etiqueta y lee una respuesta. false si se acabó la entrada.
func (s *Shell) ask(ctx context.Context, label string) (string, bool) {
	s.printf("%s: ", label)
	return s.readLine(ctx)
}

func (s *Shell) printError(err error) {
	resp := errorResponse(err)
	s.printf("✗ [%s] %s\n", resp.Code, resp.Message)
}
