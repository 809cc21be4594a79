package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"resume-folio/client"
	"resume-folio/cmd/folio/tui"
	"resume-folio/internal/logger"
	"resume-folio/renderer"
)

var (
	gatewayURL string
	sessionDir string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// outbound HTTP logging rides the shared transport; FOLIO_LOG_LEVEL=debug
	// surfaces the per-request lines
	logger.InitFromEnv("FOLIO_LOG_LEVEL")

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Turn a resume into a deployable portfolio site",
		Long: `folio uploads a resume (PDF or DOCX) to the resume-folio gateway, lets you
edit the generated HTML/CSS/JS in a tabbed terminal editor with a live preview
file, and deploys the result or exports it as a zip archive.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&gatewayURL, "gateway", "", "Gateway base URL (defaults to $FOLIO_GATEWAY_URL, then http://localhost:8000)")
	cmd.PersistentFlags().StringVarP(&sessionDir, "session", "s", "folio-site", "Session directory holding the generated site")
	cmd.AddCommand(
		newHealthCmd(),
		newGenerateCmd(),
		newEditCmd(),
		newDeployCmd(),
		newExportCmd(),
		newPreviewCmd(),
	)
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the gateway and report its status",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.NewAPI(gatewayURL)
			health := api.Health(cmd.Context())
			fmt.Printf("gateway: %s\n", health.Gateway)
			fmt.Printf("generation key configured: %t\n", health.KeyConfigured)
			if health.Gateway != client.GatewayHealthy {
				return fmt.Errorf("gateway is %s", health.Gateway)
			}
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "generate <resume.pdf|resume.docx>",
		Short: "Upload a resume and generate the portfolio site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.NewAPI(gatewayURL)
			api.GenerateTimeout = timeout

			// generation is hard-gated on the health probe
			health := api.Health(cmd.Context())
			if health.Gateway != client.GatewayHealthy {
				return fmt.Errorf("generation disabled: gateway is %s", health.Gateway)
			}
			if !health.KeyConfigured {
				fmt.Fprintln(os.Stderr, "warning: gateway reports no generation API key; requests may fail")
			}

			fmt.Printf("uploading %s ...\n", args[0])
			outcome, err := api.Generate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !outcome.Ok() {
				return fmt.Errorf("%s", outcome.Message())
			}

			session := client.NewSession()
			session.ApplyGeneration(filepath.Base(args[0]), outcome.Site)
			if err := session.Save(sessionDir); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			writePreview(session)

			fmt.Printf("site generated into %s/ (index.html, style.css, script.js)\n", sessionDir)
			fmt.Println("run 'folio edit' to open the editor")
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", client.DefaultGenerateTimeout, "Generation request timeout")
	return cmd
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the generated site in a tabbed terminal editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := client.LoadSession(sessionDir)
			if err != nil {
				return fmt.Errorf("load session (run 'folio generate' first): %w", err)
			}

			api := client.NewAPI(gatewayURL)
			app := tui.NewApp(session, api, sessionDir)
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return err
			}
			return session.Save(sessionDir)
		},
	}
}

func newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the current site and print its public URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := client.LoadSession(sessionDir)
			if err != nil {
				return fmt.Errorf("load session (run 'folio generate' first): %w", err)
			}
			if err := session.CanPublish(); err != nil {
				return err
			}

			api := client.NewAPI(gatewayURL)
			fmt.Println("deploying ...")
			outcome := api.Deploy(cmd.Context(), session.Site)
			if !outcome.Ok() {
				return fmt.Errorf("%s", outcome.Message())
			}

			session.DeployURL = outcome.URL
			session.Phase = client.PhaseDeployed
			if err := session.Save(sessionDir); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Printf("deployed: %s\n", outcome.URL)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current site as a timestamped zip archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := client.LoadSession(sessionDir)
			if err != nil {
				return fmt.Errorf("load session (run 'folio generate' first): %w", err)
			}

			path, err := session.ExportArchiveFile(outDir, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("exported: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the archive into")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var snapshot bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Recompose the preview document (optionally snapshot it to PNG)",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := client.LoadSession(sessionDir)
			if err != nil {
				return fmt.Errorf("load session (run 'folio generate' first): %w", err)
			}

			path := writePreview(session)
			fmt.Printf("preview: %s\n", path)

			if snapshot {
				png := filepath.Join(sessionDir, "preview.png")
				if err := renderer.SnapshotToFile(client.ComposePreview(session.Site), png); err != nil {
					return fmt.Errorf("snapshot: %w", err)
				}
				fmt.Printf("snapshot: %s\n", png)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "Render a PNG snapshot with headless Chrome")
	return cmd
}

func writePreview(session *client.Session) string {
	path := filepath.Join(sessionDir, "preview.html")
	_ = os.WriteFile(path, []byte(client.ComposePreview(session.Site)), 0o644)
	return path
}
