// Package ports define contratos hacia servicios externos consumidos por la
// capa de aplicación.
package ports

import "context"

// Notifier envía un aviso de texto al dueño del negocio. Las implementaciones
// no deben bloquear el flujo principal: un fallo de envío se registra y se
// descarta.
type Notifier interface {
	Send(ctx context.Context, text string)
}
