package serve

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/engine/infra/server"
	"github.com/taskdeck/taskdeck/pkg/config"
)

// NewServeCmd creates the command that runs the scoring service.
func NewServeCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the task analysis service",
		Long: `Start the HTTP service the board and analyze commands talk to.
The service is stateless; task collections live in the clients.`,
		Example: `  taskdeck serve
  TASKDECK_SERVER_PORT=9000 taskdeck serve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := config.FromContext(ctx)
			switch cfg.Runtime.Environment {
			case "production":
				gin.SetMode(gin.ReleaseMode)
			case "test":
				gin.SetMode(gin.TestMode)
			default:
				gin.SetMode(gin.DebugMode)
			}

			srv, err := server.New(ctx)
			if err != nil {
				return err
			}
			return srv.Start(ctx)
		},
	}
	return command
}
