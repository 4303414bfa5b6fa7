package notify

import (
	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

var _ cart.Notifier = (*LogNotifier)(nil)

// LogNotifier sustituye los toasts del frontend original: cada aviso del
// motor se emite como evento estructurado visible para el operador.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador sobre el logger de la app.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Success aviso de operación completada.
func (n *LogNotifier) Success(msg string) {
	n.log.Info().Str("resultado", "ok").Msg(msg)
}

// Failure aviso de operación fallida.
func (n *LogNotifier) Failure(msg string) {
	n.log.Warn().Str("resultado", "error").Msg(msg)
}
