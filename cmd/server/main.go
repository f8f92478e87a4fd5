// rosecrypt-server starts an SSH server that hands every connecting client
// its own interactive dungeon viewer. Build:
//
//	go build -o rosecrypt-server ./cmd/server
//
// Usage:
//
//	./rosecrypt-server [--port 2222] [--key server_host_key] [--width 80] [--height 80]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	cryptorand "crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"rosecrypt/internal/generate"
	"rosecrypt/internal/logging"
	internalssh "rosecrypt/internal/ssh"
	"rosecrypt/internal/view"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	width := flag.Int("width", 80, "Dungeon width in tiles")
	height := flag.Int("height", 80, "Dungeon height in tiles")
	seed := flag.String("seed", "", "Base seed; every session gets a random one when empty")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, *seed, *width, *height)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication. Add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("rosecrypt SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// allowedTerms lists the terminal types we are willing to pass to terminfo
// lookup. Anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

// sanitizeName strips control characters from an SSH user name and caps it
// at 16 bytes without splitting a rune, so it is safe to log and display.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > 16 {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// handleSession serves one SSH connection: it wraps the session in a tcell
// screen and runs a dungeon viewer on it until the client quits.
func handleSession(s gossh.Session, baseSeed string, width, height int) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The viewer requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = "anonymous"
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if t, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[t] {
			term = t
			break
		}
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it, so screen creation is serialized.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seed := baseSeed
	if seed == "" {
		seed = fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	settings := generate.NewSettings(seed, generate.DefaultTags(rng), width, height)

	log.Printf("session for %s: seed %q, %dx%d", name, seed, width, height)
	sessionLog := logging.New("Session", logging.LevelInfo, os.Stderr)
	view.New(screen, settings, sessionLog).Run()
	log.Printf("session for %s closed", name)
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(cryptorand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "rosecrypt server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
