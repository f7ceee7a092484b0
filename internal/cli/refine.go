package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aifinder/ai-finder/internal/ratelimit"
	"github.com/aifinder/ai-finder/internal/refine"
)

// NewRefineCmd creates the interactive 'refine' command.
func NewRefineCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "refine <agent-id> <query>...",
		Short: "Answer a few questions to build a custom prompt",
		Long: `Walk through the refinement questions for an agent and generate a prompt
tailored to your answers. Each step shows numbered options:

  1 3     toggle options 1 and 3 for the current question
  enter   keep the current selection and move on
  b       go back one step (exits from the first step)
  s       skip the remaining questions and generate the prompt right away
  g       generate the prompt (from the summary)
  q       quit without generating`,
		Example: `  ai-finder refine jasper write a weekly newsletter
  ai-finder refine cursor "migrate this service to Go" --save`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRefine(cmd, args[0], strings.Join(args[1:], " "), save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the generated prompt as a template")

	return cmd
}

func runRefine(cmd *cobra.Command, agentID, query string, save bool) error {
	app, err := newApp(cfgFile)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.checkLimit(ratelimit.ActionRefine); err != nil {
		return err
	}

	agent, ok := app.Catalog.AgentByID(agentID)
	if !ok {
		return fmt.Errorf("agent '%s' not found, try 'ai-finder directory'", agentID)
	}

	session, err := refine.NewSession(query, agent)
	if err != nil {
		return fmt.Errorf("cannot start refinement: %w", err)
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	for {
		switch session.State() {
		case refine.StateQuestion:
			if done, err := runQuestionStep(session, in, out); err != nil || done {
				return err
			}
		case refine.StateSummary:
			if done, err := runSummary(session, in, out); err != nil || done {
				return err
			}
		case refine.StatePromptReady:
			prompt := session.Prompt()
			fmt.Fprintln(out)
			fmt.Fprintln(out, prompt)
			if save {
				app.UserData.SaveTemplate(query, agent.Name, prompt)
				fmt.Fprintln(out, "\nSaved as template.")
			}
			return nil
		}
	}
}

// runQuestionStep shows the current step and applies one line of input per
// question. Reports done when the user quit or backed out of the flow.
func runQuestionStep(session *refine.Session, in *bufio.Scanner, out io.Writer) (done bool, err error) {
	step := session.CurrentStep()
	fmt.Fprintf(out, "\n[Step %d/%d] %s\n", session.StepIndex()+1, len(session.Steps()), step.Title)

	for _, q := range step.Questions {
		fmt.Fprintf(out, "\n%s\n", q.Text)
		selected := selectedSet(session.Answers()[q.ID])
		for i, opt := range q.Options {
			marker := " "
			if selected[opt.Value] {
				marker = "x"
			}
			fmt.Fprintf(out, "  [%s] %d. %s\n", marker, i+1, opt.Label)
		}
		fmt.Fprint(out, "> ")

		if !in.Scan() {
			return true, in.Err()
		}
		line := strings.TrimSpace(in.Text())

		switch line {
		case "q":
			fmt.Fprintln(out, "Exited without generating.")
			return true, nil
		case "b":
			if exited := session.Back(); exited {
				fmt.Fprintln(out, "Exited without generating.")
				return true, nil
			}
			return false, nil
		case "s":
			session.Skip()
			return false, nil
		case "":
			continue
		default:
			for _, field := range strings.Fields(line) {
				idx, convErr := strconv.Atoi(field)
				if convErr != nil || idx < 1 || idx > len(q.Options) {
					fmt.Fprintf(out, "Ignoring '%s': enter option numbers 1-%d.\n", field, len(q.Options))
					continue
				}
				session.Toggle(q.ID, q.Options[idx-1].Value)
			}
		}
	}

	session.Continue()
	return false, nil
}

// runSummary shows the summary and waits for generate/back/quit.
func runSummary(session *refine.Session, in *bufio.Scanner, out io.Writer) (done bool, err error) {
	fmt.Fprintf(out, "\n%s\n", session.Summary())
	fmt.Fprint(out, "[g]enerate, [b]ack, [q]uit > ")

	if !in.Scan() {
		return true, in.Err()
	}
	switch strings.TrimSpace(in.Text()) {
	case "g", "":
		session.Generate()
	case "b":
		session.Back()
	case "q":
		fmt.Fprintln(out, "Exited without generating.")
		return true, nil
	}
	return false, nil
}

func selectedSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
