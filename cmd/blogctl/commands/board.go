package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"blog-store/internal/domain"
)

func boardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage posts",
	}
	cmd.AddCommand(
		boardCreateCmd(a),
		boardListCmd(a),
		boardShowCmd(a),
		boardUpdateCmd(a),
		boardDeleteCmd(a),
	)
	return cmd
}

func boardCreateCmd(a *app) *cobra.Command {
	var (
		userID         int64
		title, content string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.boards.Create(cmd.Context(), userID, title, content)
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "owning user id")
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func boardListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := a.boards.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR")
			for _, board := range boards {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", board.ID, board.Title, board.User.Username)
			}
			return tw.Flush()
		},
	}
}

func boardShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			board, err := a.boards.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if board == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
}

func boardUpdateCmd(a *app) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Replace a post's title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			board, err := a.boards.Update(cmd.Context(), id, title, content)
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new body")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func boardDeleteCmd(a *app) *cobra.Command {
	var safe bool
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.boards.Delete(cmd.Context(), id, safe); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&safe, "safe", false, "load the post before deleting it")
	return cmd
}

func printBoard(w io.Writer, board *domain.Board) {
	fmt.Fprintf(w, "%d\t%s\t%s\n%s\n", board.ID, board.Title, board.User.Username, board.Content)
}
