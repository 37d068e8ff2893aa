// Command ownertoken issues an access token for a restaurant owner.
//
//	ownertoken -owner 5f0c7c52-6c6f-4f57-9a4e-0d1c2b3a4f50 -restaurants 1,2
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"eats/config"
	"eats/internal/infra/auth"
	"eats/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cmd := flag.NewFlagSet("ownertoken", flag.ContinueOnError)
	owner := cmd.String("owner", "", "Owner ID (UUID); a new one is generated when empty")
	restaurants := cmd.String("restaurants", "", "Comma-separated restaurant IDs the owner manages")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	ownerID, restaurantIDs, err := parseFlags(*owner, *restaurants)
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return errors.Wrap(err, "create token service")
	}

	token, err := tokenSvc.GenerateAccessToken(ownerID, restaurantIDs)
	if err != nil {
		return errors.Wrap(err, "generate token")
	}

	ttl := tokenSvc.GetAccessTokenDuration()
	fmt.Fprintf(out, "owner:       %s\n", ownerID)
	fmt.Fprintf(out, "restaurants: %s\n", strings.Join(restaurantIDs, ", "))
	fmt.Fprintf(out, "expires:     %s (in %s)\n", time.Now().Add(ttl).Format(time.RFC3339), util.FormatDuration(ttl))
	fmt.Fprintf(out, "\n%s\n", token)

	return nil
}

func parseFlags(owner, restaurants string) (uuid.UUID, []string, error) {
	ownerID := uuid.New()
	if owner != "" {
		parsed, err := uuid.Parse(owner)
		if err != nil {
			return uuid.Nil, nil, errors.Wrap(err, "invalid -owner")
		}
		ownerID = parsed
	}

	var restaurantIDs []string
	for id := range strings.SplitSeq(restaurants, ",") {
		if id = strings.TrimSpace(id); id != "" {
			restaurantIDs = append(restaurantIDs, id)
		}
	}
	if len(restaurantIDs) == 0 {
		return uuid.Nil, nil, errors.New("-restaurants is required")
	}

	return ownerID, restaurantIDs, nil
}
