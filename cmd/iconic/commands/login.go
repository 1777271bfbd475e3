package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
	"github.com/DuneRaccoon/iconic-go/pkg/iconicclient"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint  string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the seller API",
		Long:  "Authenticate against the seller API and persist the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(apiEndpoint, clientID, clientSecret)
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")

	return cmd
}

func runLogin(apiEndpoint, clientID, clientSecret string) error {
	reader := bufio.NewReader(os.Stdin)

	if apiEndpoint == "" {
		apiEndpoint = viper.GetString("api")
	}

	if apiEndpoint == "" {
		fmt.Print("API endpoint: ")
		apiEndpoint, _ = reader.ReadString('\n')
		apiEndpoint = strings.TrimSpace(apiEndpoint)
	}

	if apiEndpoint == "" {
		return ErrAPIEndpointRequired
	}

	if clientID == "" {
		fmt.Print("Client ID: ")
		clientID, _ = reader.ReadString('\n')
		clientID = strings.TrimSpace(clientID)
	}

	if clientSecret == "" {
		fmt.Print("Client secret: ")

		secret, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}

		clientSecret = string(secret)

		fmt.Println()
	}

	client, err := iconicclient.NewWithClientCredentials(apiEndpoint, clientID, clientSecret)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	// Verify the credentials with a cheap read before persisting them.
	_, err = client.Brands().List(context.Background(), &iconic.ListBrandsParams{Limit: 1})
	if err != nil {
		return fmt.Errorf("login verification failed: %w", err)
	}

	viper.Set("api", apiEndpoint)
	viper.Set("client_id", clientID)
	viper.Set("client_secret", clientSecret)

	err = writeConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Logged in to %s\n", apiEndpoint)

	return nil
}
