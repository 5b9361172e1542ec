package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bcspragu/sidereal/web"
	"github.com/gorilla/securecookie"
	"github.com/namsral/flag"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "HTTP service address")
		hashKey  = flag.String("hash_key_file", "hashKey", "File holding the cookie signing key, generated if missing")
		blockKey = flag.String("block_key_file", "blockKey", "File holding the cookie encryption key, generated if missing")
	)

	flag.Parse()

	sc, err := loadKeys(*hashKey, *blockKey)
	if err != nil {
		log.Fatalf("failed to load cookie keys: %v", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		log.Print("shutting down")
		os.Exit(0)
	}()

	log.Printf("Server is running on %q", *addr)
	if err := http.ListenAndServe(*addr, web.New(sc)); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

func loadKeys(hashFile, blockFile string) (*securecookie.SecureCookie, error) {
	hashKey, err := loadOrGenKey(hashFile)
	if err != nil {
		return nil, err
	}

	blockKey, err := loadOrGenKey(blockFile)
	if err != nil {
		return nil, err
	}

	return securecookie.New(hashKey, blockKey), nil
}

func loadOrGenKey(name string) ([]byte, error) {
	f, err := os.ReadFile(name)
	if err == nil {
		return f, nil
	}

	dat := securecookie.GenerateRandomKey(32)
	if dat == nil {
		return nil, errors.New("failed to generate key")
	}

	if err := os.WriteFile(name, dat, 0600); err != nil {
		return nil, fmt.Errorf("error writing key file %q: %w", name, err)
	}
	return dat, nil
}
