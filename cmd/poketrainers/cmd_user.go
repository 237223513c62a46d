package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"poketrainers/internal/store"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage trainer accounts in the local database",
}

var registerFlags struct {
	email    string
	password string
	username string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	RunE:  runRegister,
}

var loginFlags struct {
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login <email|username>",
	Short: "Check credentials and show the account",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func init() {
	f := registerCmd.Flags()
	f.StringVar(&registerFlags.email, "email", "", "Gmail address (required)")
	f.StringVar(&registerFlags.password, "password", "", "Password, at least 6 characters (required)")
	f.StringVar(&registerFlags.username, "username", "", "Username (required)")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("username")

	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("password")

	userCmd.AddCommand(registerCmd, loginCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	svc, st, err := openAccounts()
	if err != nil {
		return err
	}
	defer st.Close()

	u, err := svc.Register(registerFlags.email, registerFlags.password, registerFlags.username)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", u.Username, u.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	svc, st, err := openAccounts()
	if err != nil {
		return err
	}
	defer st.Close()

	u, err := svc.Authenticate(args[0], loginFlags.password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	printUser(cmd, u)
	return nil
}

func printUser(cmd *cobra.Command, u *store.User) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Trainer: %s <%s>\n", u.Profile.Name, u.Email)
	if u.Profile.Description != "" {
		fmt.Fprintf(out, "About:   %s\n", u.Profile.Description)
	}
	fmt.Fprintf(out, "Deck:    %s\n", orNone(u.Deck))
	for _, t := range u.Teams {
		fmt.Fprintf(out, "Team %s: %s\n", t.Name, strings.Join(t.Members, ", "))
	}
}

func orNone(names []string) string {
	if len(names) == 0 {
		return "(empty)"
	}
	return strings.Join(names, ", ")
}
