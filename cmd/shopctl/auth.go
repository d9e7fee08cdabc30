package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sabirdaar/multi-lang-e-commerce/client"
)

func init() {
	var email, password, firstName, lastName string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			session, err := c.Login(cmd.Context(), client.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			return printJSON(session)
		},
	}
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Account password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			session, err := c.Register(cmd.Context(), client.RegisterRequest{
				Email:     email,
				Password:  password,
				FirstName: firstName,
				LastName:  lastName,
			})
			if err != nil {
				return err
			}
			return printJSON(session)
		},
	}
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Account password (required)")
	registerCmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			if err := c.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
	rootCmd.AddCommand(logoutCmd)

	profileCmd := &cobra.Command{Use: "profile", Short: "Profile operations"}

	profileGetCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			user, err := c.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	profileCmd.AddCommand(profileGetCmd)

	profileUpdateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup := newClient()
			defer cleanup()
			user, err := c.UpdateProfile(cmd.Context(), client.UpdateProfileRequest{
				Email:     email,
				FirstName: firstName,
				LastName:  lastName,
			})
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	profileUpdateCmd.Flags().StringVarP(&email, "email", "e", "", "New email")
	profileUpdateCmd.Flags().StringVar(&firstName, "first-name", "", "New first name")
	profileUpdateCmd.Flags().StringVar(&lastName, "last-name", "", "New last name")
	profileCmd.AddCommand(profileUpdateCmd)

	rootCmd.AddCommand(profileCmd)
}
