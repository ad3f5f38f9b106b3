// cmd/seedadmin/main.go — creates or resets the main admin account.
// Usage: go run ./cmd/seedadmin [password]
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/config"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config error: %v", err)
	}
	if cfg.BoltPath == "" {
		stdlog.Fatal("BOLT_PATH must be set, in-memory storage cannot be seeded ahead of time")
	}

	password := "admin123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		stdlog.Fatalf("bcrypt error: %v", err)
	}

	kv, err := repository.NewBolt(cfg.BoltPath)
	if err != nil {
		stdlog.Fatalf("bolt open error: %v", err)
	}
	defer kv.Close()

	store := catalog.NewStore(kv, model.CategoryUsers, catalog.DefaultUsers)
	err = store.Mutate(context.Background(), func(items []*model.User) ([]*model.User, error) {
		admin, ok := catalog.FindByID(items, model.MainAdminID)
		if !ok {
			admin = &model.User{
				ID:        model.MainAdminID,
				FirstName: "Main",
				LastName:  "Admin",
				Username:  "admin",
				Email:     "admin@mechanic.local",
				Phone:     "+255000000000",
			}
			items = append(items, admin)
		}
		admin.PasswordHash = string(hash)
		admin.Role = model.RoleAdmin
		admin.Status = model.StatusActive
		return items, nil
	})
	if err != nil {
		stdlog.Fatalf("seed error: %v", err)
	}

	fmt.Printf("main admin ready, username 'admin' password '%s'\n", password)
}
