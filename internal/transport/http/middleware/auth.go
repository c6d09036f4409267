package middleware

import (
	"fmt"
	"strings"

	"team-membership-service/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ActorKey is the fiber locals key holding the resolved entities.Actor.
const ActorKey = "actor"

// Authenticate resolves the actor from an Authorization bearer token.
// Requests without a valid token proceed with a zero actor; the usecase
// layer decides which operations require authentication.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.Next()
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" {
			return c.Next()
		}

		c.Locals(ActorKey, entities.Actor{ID: sub, Email: email})
		return c.Next()
	}
}

// ActorFrom extracts the actor resolved by Authenticate, if any.
func ActorFrom(c *fiber.Ctx) entities.Actor {
	actor, _ := c.Locals(ActorKey).(entities.Actor)
	return actor
}
