package interactive

import (
	"github.com/awaremux/awaremux-go/pkg/aware"
	"github.com/awaremux/awaremux-go/pkg/hal"
)

// clientPrinter prints client events.
type clientPrinter struct {
	shell *Shell
	id    aware.ClientID
}

func (p *clientPrinter) OnConfigCompleted(config hal.ConfigRequest) {
	p.shell.printf("[EVENT] client %d: config completed %s\n", p.id, config)
}

func (p *clientPrinter) OnConfigFailed(reason aware.FailReason) {
	p.shell.printf("[EVENT] client %d: config failed (%s)\n", p.id, reason)
}

func (p *clientPrinter) OnIdentityChanged() {
	p.shell.printf("[EVENT] client %d: identity changed\n", p.id)
}

func (p *clientPrinter) OnNanDown(reason aware.FailReason) {
	p.shell.printf("[EVENT] client %d: NAN down (%s)\n", p.id, reason)
}

// sessionPrinter prints session events.
type sessionPrinter struct {
	shell   *Shell
	client  aware.ClientID
	session aware.SessionID
}

func (p *sessionPrinter) printf(format string, args ...any) {
	p.shell.printf("[EVENT] session %d/%d: "+format+"\n", append([]any{p.client, p.session}, args...)...)
}

func (p *sessionPrinter) OnPublishFail(reason aware.FailReason) {
	p.printf("publish failed (%s)", reason)
}

func (p *sessionPrinter) OnPublishTerminated(reason aware.TerminateReason) {
	p.printf("publish terminated (%s)", reason)
}

func (p *sessionPrinter) OnSubscribeFail(reason aware.FailReason) {
	p.printf("subscribe failed (%s)", reason)
}

func (p *sessionPrinter) OnSubscribeTerminated(reason aware.TerminateReason) {
	p.printf("subscribe terminated (%s)", reason)
}

func (p *sessionPrinter) OnMatch(peerID uint32, serviceSpecificInfo []byte, _ []byte) {
	p.printf("match peer %d info=%q", peerID, serviceSpecificInfo)
}

func (p *sessionPrinter) OnMessageReceived(peerID uint32, message []byte) {
	p.printf("message from peer %d: %q", peerID, message)
}

func (p *sessionPrinter) OnMessageSendSuccess(messageID int) {
	p.printf("message %d sent", messageID)
}

func (p *sessionPrinter) OnMessageSendFail(messageID int, reason aware.FailReason) {
	p.printf("message %d failed (%s)", messageID, reason)
}
