// cmd/tokengen/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront/internal/config"
	"github.com/javajoker/storefront/internal/utils"
)

// tokengen prints a signed access token for the configured JWT secret, or a
// fresh secret with -new-secret.
func main() {
	subject := flag.String("subject", "", "token subject (operator name or customer id)")
	role := flag.String("role", utils.RoleOperator, "token role: operator or customer")
	ttl := flag.Int("ttl", 0, "token lifetime in hours (defaults to JWT_ACCESS_TTL)")
	newSecret := flag.Bool("new-secret", false, "print a random JWT_SECRET value and exit")
	flag.Parse()

	if *newSecret {
		secret, err := utils.GenerateSigningSecret()
		if err != nil {
			logrus.WithError(err).Fatal("Failed to generate secret")
		}
		fmt.Println(secret)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -subject <name> [-role operator|customer] [-ttl hours]")
		os.Exit(2)
	}
	if *ttl <= 0 {
		*ttl = cfg.JWT.AccessTokenTTL
	}

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetJWTIssuer(cfg.JWT.Issuer)

	token, err := utils.GenerateJWT(*subject, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to generate token")
	}

	logrus.WithFields(logrus.Fields{
		"subject":     *subject,
		"role":        *role,
		"ttl_hours":   *ttl,
		"fingerprint": utils.TokenFingerprint(token),
	}).Info("Token generated")
	fmt.Println(token)
}
