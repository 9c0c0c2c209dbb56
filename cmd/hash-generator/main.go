// Command hash-generator prints the bcrypt hash of a password, using the
// same hasher the server uses. Handy for seeding users directly in the
// database during development.
//
// Usage:
//
//	hash-generator [-cost N] <password> [password ...]
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/dstebbins/microblog-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] <password> [password ...]")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(*cost)
	for _, password := range flag.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
	}
}
