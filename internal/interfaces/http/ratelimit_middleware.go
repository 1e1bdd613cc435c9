package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/inventorywise/api/internal/application/dto"
)

// IPRateLimiter limita peticiones por IP con token bucket. Se usa en las
// rutas públicas de auth para frenar fuerza bruta de credenciales.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewIPRateLimiter construye el limiter: rps peticiones/segundo con ráfaga burst.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

// Handler devuelve el middleware Fiber.
func (l *IPRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.limiter(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones, intente más tarde"})
		}
		return c.Next()
	}
}
