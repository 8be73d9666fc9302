package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/board"
	"github.com/Chittaranjans/Recruiter-board/internal/pipeline"
)

var columnStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Width(24)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the pipeline board",
	Long: `Show the kanban view of the pipeline: one column per status, every
candidate in exactly one column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapViewPipeline); err != nil {
			return err
		}

		r := board.New(application.Backend)
		if err := r.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}

		columns := make([]string, 0, len(pipeline.Statuses))
		for _, status := range pipeline.Statuses {
			cards := r.Column(status)
			body := labelStyle.Render(fmt.Sprintf("%s (%d)", status, len(cards)))
			for _, c := range cards {
				body += fmt.Sprintf("\n%s %s", valueStyle.Render(strconv.Itoa(c.ID)), c.Name)
			}
			columns = append(columns, columnStyle.Render(body))
		}
		fmt.Println(titleStyle.Render(fmt.Sprintf("Pipeline Board (%d candidates)", r.Total())))
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
		return nil
	},
}

var boardMoveCmd = &cobra.Command{
	Use:   "move [candidate-id] [new-status]",
	Short: "Move a candidate to another column",
	Long: `Move a candidate between board columns. The move is applied locally first
and then confirmed against the record store; if the store rejects it, the
board is reloaded and the previous state reported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %s", args[0])
		}
		if err := application.RequireCapability(auth.CapChangeCandidateStatus); err != nil {
			return err
		}

		candidate, err := application.Backend.GetCandidate(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch candidate: %w", err)
		}
		from := pipeline.Status(candidate.Status)
		to := pipeline.Status(args[1])

		r := board.New(application.Backend)
		if err := r.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}

		state, err := r.MoveCandidate(cmd.Context(), id, from, to)
		switch state {
		case board.MoveConfirmed:
			fmt.Println(titleStyle.Render("✓ Moved"))
			fmt.Printf("%s %s → %s\n", labelStyle.Render(candidate.Name+":"), from, to)
		case board.MoveSkipped:
			if err != nil {
				return fmt.Errorf("cannot move: %w", err)
			}
			fmt.Println(valueStyle.Render("Already there; nothing to do."))
		case board.MoveRolledBack:
			fmt.Println(titleStyle.Render("✗ Move rejected"))
			fmt.Printf("%s %v\n", labelStyle.Render("Reason:"), err)
			fmt.Println(valueStyle.Render("The board was reloaded; no change was kept."))
		default:
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	boardCmd.AddCommand(boardMoveCmd)
	rootCmd.AddCommand(boardCmd)
}
