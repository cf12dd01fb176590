package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrFamilyFull indica que el rango de IDs de la familia elegida ya no
	// tiene huecos (ej. Pan Salado 100-199 con 100 productos).
	ErrFamilyFull = errors.New("la familia de productos está llena")

	// ErrInsufficientStock bloquea la confirmación de producción cuando
	// algún insumo acumulado queda por debajo del requerimiento.
	ErrInsufficientStock = errors.New("inventario insuficiente")

	// ErrRouteAlreadyClosed indica que el vendedor ya tiene un corte de caja
	// registrado hoy. Es un estado normal visible al usuario, no una excepción.
	ErrRouteAlreadyClosed = errors.New("la ruta ya fue cerrada hoy")

	// ErrIncompleteSnapshot indica que alguna de las colecciones base
	// (productos, movimientos o stock) no pudo cargarse; el pronóstico se
	// aborta en lugar de producir un reporte parcial engañoso.
	ErrIncompleteSnapshot = errors.New("datos incompletos para el cálculo")
)
