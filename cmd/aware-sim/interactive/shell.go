// Package interactive provides the interactive command-line interface
// for aware-sim.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/awaremux/awaremux-go/internal/halsim"
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
)

// Simulator is the part of the simulated radio the shell can drive. It is
// nil when the shell runs against a real network backend.
type Simulator interface {
	AddPeer(p halsim.Peer) (uint32, error)
	RotatePeerMAC(instanceID uint32, mac hal.MAC) error
	SendFromPeer(instanceID uint32, message []byte) error
	Terminate(pubSubID uint32, reason hal.TerminateReason) error
	NanDown(status hal.Status) error
	JoinCluster(clusterMAC hal.MAC) error
}

// Shell handles interactive mode for aware-sim.
type Shell struct {
	mgr *aware.Manager
	sim Simulator

	mu  sync.Mutex
	out io.Writer

	// Timeout bounds Snapshot and Flush calls.
	Timeout time.Duration

	nextMessageID int
}

// New creates a shell that writes to out. sim may be nil.
func New(mgr *aware.Manager, sim Simulator, out io.Writer) *Shell {
	return &Shell{
		mgr:     mgr,
		sim:     sim,
		out:     out,
		Timeout: 2 * time.Second,
	}
}

// printf writes to the shell output. Listeners call it from the
// coordinator goroutine.
func (s *Shell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	s.printf("%s\n", line)
}

// Run starts the interactive command loop on a readline prompt. The shell
// output is redirected to the prompt for the duration of the loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "aware> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.mu.Lock()
	s.out = rl.Stdout()
	s.mu.Unlock()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			s.println("Exiting...")
			cancel()
			return nil
		}

		if s.Execute(ctx, line) {
			s.println("Exiting...")
			cancel()
			return nil
		}
	}
}

// Execute runs one command line. It returns true if the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "connect", "c":
		s.cmdConnect(args)

	case "disconnect", "dc":
		s.cmdDisconnect(args)

	case "config", "cfg":
		s.cmdConfig(args)

	case "publish", "pub":
		s.cmdPublish(args)

	case "subscribe", "sub":
		s.cmdSubscribe(args)

	case "send":
		s.cmdSend(args)

	case "destroy":
		s.cmdDestroy(args)

	case "caps":
		s.cmdCaps()

	case "status", "s":
		s.cmdStatus(ctx)

	case "peer":
		s.cmdPeer(args)

	case "terminate":
		s.cmdTerminate(args)

	case "nandown":
		s.cmdNanDown()

	case "cluster":
		s.cmdCluster(args)

	case "quit", "exit", "q":
		return true

	default:
		s.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	s.println(`
aware-sim Commands:
  Clients:
    connect <client>                      - Connect a client
    disconnect <client>                   - Disconnect a client
    config <client> [5g] [pref=N] [low=N] [high=N]
                                          - Request a configuration

  Sessions:
    publish <client> <session> <service> [info]
    subscribe <client> <session> <service> [info]
    send <client> <session> <peer> <message>
    destroy <client> <session>

  Device:
    caps                                  - Request the capability record
    status                                - Show coordinator state

  Simulation:
    peer add <service> [info] [echo]      - Put a remote publisher in range
    peer rotate <peer> <mac>              - Change a peer's MAC address
    peer send <peer> <message>            - Send a message from a peer
    terminate <pubsub-id> [reason]        - End a session from the radio
    nandown                               - Take the radio down
    cluster <mac>                         - Join a cluster

  Other:
    help                                  - Show this help
    quit                                  - Exit`)
}
