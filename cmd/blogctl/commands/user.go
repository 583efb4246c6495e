package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"blog-store/internal/domain"
	"blog-store/internal/service"
)

func userCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(
		userRegisterCmd(a),
		userLoginCmd(a),
		userShowCmd(a),
		userPasswdCmd(a),
	)
	return cmd
}

func userRegisterCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "register [username] [password]",
		Short: "Create a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.users.Register(cmd.Context(), args[0], args[1], email)
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}

func userLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login [username] [password]",
		Short: "Check a username and password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.users.Login(cmd.Context(), args[0], args[1])
			if errors.Is(err, service.ErrInvalidCredentials) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid credentials")
				return nil
			}
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func userShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := a.users.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func userPasswdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd [id] [new-password]",
		Short: "Change a user's password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := a.users.ChangePassword(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func printUser(w io.Writer, user *domain.User) {
	fmt.Fprintf(w, "%d\t%s\t%s\n", user.ID, user.Username, user.Email)
}
