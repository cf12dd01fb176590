// Package notify implementa el puente de avisos por WhatsApp vía TextMeBot.
package notify

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amasasystem/amasa-api/internal/application/ports"
	"github.com/amasasystem/amasa-api/pkg/config"
)

// Verificar en tiempo de compilación que TextMeBotNotifier implementa Notifier.
var _ ports.Notifier = (*TextMeBotNotifier)(nil)

const sendURL = "https://api.textmebot.com/send.php"

// TextMeBotNotifier envía mensajes de WhatsApp con la API de TextMeBot.
// Es estrictamente best-effort: los fallos se registran y se descartan; un
// corte o una compra de insumo nunca dependen del aviso.
type TextMeBotNotifier struct {
	phone      string
	apiKey     string
	httpClient *http.Client
}

// NewTextMeBotNotifier construye el notificador. Con teléfono o API key
// vacíos el envío se omite en silencio (el canal está deshabilitado).
func NewTextMeBotNotifier(cfg config.NotifyConfig) *TextMeBotNotifier {
	return &TextMeBotNotifier{
		phone:  cfg.Phone,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send dispara el mensaje en una goroutine y regresa de inmediato.
func (n *TextMeBotNotifier) Send(ctx context.Context, text string) {
	if n.phone == "" || n.apiKey == "" {
		return
	}
	// Independiente del ctx del request: el aviso sale aunque el handler ya
	// haya respondido.
	go n.send(text)
}

func (n *TextMeBotNotifier) send(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params := url.Values{}
	params.Set("recipient", n.phone)
	params.Set("apikey", n.apiKey)
	params.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sendURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("notify: armar request de WhatsApp")
		return
	}
	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("notify: enviar WhatsApp")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("notify: TextMeBot respondió error")
	}
}
