package cli

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/auth"
	"github.com/example/anime-catalog/internal/platform/natsconn"
)

const defaultInvalidationSubject = "jikan.cache.invalidate"

// tokenCmd mints an admin bearer token for the gateway cache endpoint.
func (a *app) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token for the gateway cache endpoint",
		Example: `  JIKANCTL_ADMIN_SECRET=... jikanctl token --subject ops
  curl -XPOST -H "Authorization: Bearer $(jikanctl token)" gateway/v1/admin/cache/invalidate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := strings.TrimSpace(a.v.GetString("admin-secret"))
			if secret == "" {
				return errors.New("admin secret is required (--admin-secret or JIKANCTL_ADMIN_SECRET)")
			}
			ttl := a.v.GetDuration("ttl")
			if ttl <= 0 {
				return errors.New("--ttl must be positive")
			}
			now := time.Now()
			tok, err := auth.JWTVerifier{Secret: []byte(secret)}.Sign(auth.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   a.v.GetString("subject"),
					IssuedAt:  jwt.NewNumericDate(now),
					ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				},
				Role: auth.RoleAdmin,
			})
			if err != nil {
				return err
			}
			return printLine(a.out, "%s", tok)
		},
	}
	f := cmd.Flags()
	f.String("admin-secret", "", "HS256 secret shared with the gateway (ADMIN_JWT_SECRET)")
	f.String("subject", "jikanctl", "token subject")
	f.Duration("ttl", time.Hour, "token lifetime")
	_ = a.v.BindPFlag("admin-secret", f.Lookup("admin-secret"))
	_ = a.v.BindPFlag("subject", f.Lookup("subject"))
	_ = a.v.BindPFlag("ttl", f.Lookup("ttl"))
	return cmd
}

// invalidateCmd broadcasts a cache invalidation to every gateway replica.
func (a *app) invalidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invalidate [KEY]",
		Short: "Drop cached responses on every gateway via NATS",
		Long: `Publish a cache invalidation. KEY is "<keyspace>:<request key>", for
example "anime:/anime/1" or "top_anime:/top/anime?page=1". Without KEY every
cached response is dropped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := jikan.InvalidateAll
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				key = strings.TrimSpace(args[0])
			}
			nc, err := natsconn.Connect(natsconn.Options{
				URL:    a.v.GetString("nats-url"),
				Name:   "jikanctl",
				Logger: a.log,
			})
			if err != nil {
				return err
			}
			defer nc.Close()

			subj := a.v.GetString("subject-name")
			if err := jikan.PublishInvalidation(nc, subj, key); err != nil {
				return err
			}
			if err := nc.Flush(); err != nil {
				return err
			}
			return printLine(a.out, "invalidated %s on %s", key, subj)
		},
	}
	f := cmd.Flags()
	f.String("nats-url", "", "NATS server URL (defaults to NATS_URL)")
	f.String("subject-name", defaultInvalidationSubject, "invalidation subject")
	_ = a.v.BindPFlag("nats-url", f.Lookup("nats-url"))
	_ = a.v.BindPFlag("subject-name", f.Lookup("subject-name"))
	return cmd
}
