package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Sabirdaar/multi-lang-e-commerce/client"
	"github.com/Sabirdaar/multi-lang-e-commerce/client/localstate"
)

var (
	gatewayFlag string
	rootCmd     = &cobra.Command{
		Use:   "shopctl",
		Short: "CLI storefront client for the ShopEase gateway",
	}
)

func main() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&gatewayFlag, "gateway", "g",
		os.Getenv("SHOPEASE_GATEWAY_URL"), "Gateway base URL (empty or loopback serves mock data)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds the dispatch client with the on-disk session store. When
// local state cannot be opened the session falls back to process memory.
func newClient() (*client.Client, func()) {
	opts := []client.Option{
		client.WithOnUnauthorized(func() {
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
		}),
	}

	cleanup := func() {}
	if store, err := localstate.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: local state unavailable (%v), session will not persist\n", err)
	} else {
		opts = append(opts, client.WithSessionStore(store))
		cleanup = func() { _ = store.Close() }
	}

	return client.New(gatewayFlag, opts...), cleanup
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}
