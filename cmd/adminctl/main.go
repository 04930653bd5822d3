// adminctl provisions admin panel accounts. There is no signup flow on the
// site; operators create or rotate accounts with this tool:
//
//	adminctl -email coach@club.example -password 's3cret'
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/tigerwc/clubsite/internal/admins"
	"github.com/tigerwc/clubsite/internal/config"
	"github.com/tigerwc/clubsite/internal/database"
)

func main() {
	email := flag.String("email", "", "admin email address (required)")
	password := flag.String("password", "", "password; prompted interactively when omitted")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGODB_URI must be set")
	}

	pw := *password
	if pw == "" {
		fmt.Fprint(os.Stderr, "password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatalf("read password: %v", err)
		}
		pw = string(raw)
	}
	if len(pw) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	col := client.Database(cfg.MongoDB.Database).Collection("admins")
	svc := admins.NewService(admins.NewMongoRepository(col))
	a, err := svc.SetPassword(ctx, *email, pw)
	if err != nil {
		log.Fatalf("set password: %v", err)
	}
	fmt.Printf("account %s saved\n", a.Email)
}
