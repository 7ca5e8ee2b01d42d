package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/photo-portfolio/internal/app"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/persistence"
	"github.com/MGTheTrain/photo-portfolio/internal/infrastructure/security"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PasswordEnv is read when --password is not given, keeping the password out
// of the shell history
const PasswordEnv = "PORTFOLIO_USER_PASSWORD"

// UserCommandHandler manages admin panel accounts from the command line
type UserCommandHandler struct {
	authService users.AuthService
	logger      logger.Logger
}

// NewUserCommandHandler wires the auth service on top of an open store
func NewUserCommandHandler(store *storeSession) (*UserCommandHandler, error) {
	userRepo, err := persistence.NewGormUserRepository(store.db, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	revokedRepo, err := persistence.NewGormRevokedTokenRepository(store.db, store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create revoked token repository: %w", err)
	}

	tokens, err := security.NewJWTTokenManager(&store.cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, revokedRepo, tokens, security.NewBcryptPasswordHasher(0), store.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &UserCommandHandler{
		authService: authService,
		logger:      store.logger,
	}, nil
}

// CreateUserCmd adds an account
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	role, err := cmd.Flags().GetString("role")
	if err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}
	password, err := passwordFlag(cmd)
	if err != nil {
		return err
	}

	user, err := commandHandler.authService.CreateUser(cmd.Context(), email, password, role)
	if err != nil {
		return err
	}

	commandHandler.logger.Info("User created", "id", user.ID, "email", user.Email, "role", user.Role)
	return nil
}

// SetPasswordCmd replaces the password of an existing account
func (commandHandler *UserCommandHandler) SetPasswordCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := passwordFlag(cmd)
	if err != nil {
		return err
	}

	if err := commandHandler.authService.SetPassword(cmd.Context(), email, password); err != nil {
		return err
	}

	commandHandler.logger.Info("Password updated", "email", email)
	return nil
}

func passwordFlag(cmd *cobra.Command) (string, error) {
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return "", fmt.Errorf("invalid password flag: %w", err)
	}
	if password == "" {
		password = os.Getenv(PasswordEnv)
	}
	if password == "" {
		return "", fmt.Errorf("a password is required: pass --password or set %s", PasswordEnv)
	}
	return password, nil
}

// withUserHandler opens the store for the duration of one command
func withUserHandler(run func(*UserCommandHandler, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		handler, err := NewUserCommandHandler(store)
		if err != nil {
			return err
		}
		return run(handler, cmd, args)
	}
}

// InitUserCommands registers the user management commands
func InitUserCommands(rootCmd *cobra.Command) error {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage admin panel accounts",
	}

	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE:  withUserHandler((*UserCommandHandler).CreateUserCmd),
	}
	createUserCmd.Flags().String("email", "", "Email address used to sign in")
	createUserCmd.Flags().String("role", users.RoleAdmin, "Role of the account (admin or viewer)")
	createUserCmd.Flags().String("password", "", "Password, at least 12 characters (or set "+PasswordEnv+")")
	if err := createUserCmd.MarkFlagRequired("email"); err != nil {
		return fmt.Errorf("failed to mark email flag required: %w", err)
	}
	usersCmd.AddCommand(createUserCmd)

	setPasswordCmd := &cobra.Command{
		Use:   "set-password",
		Short: "Replace the password of an account",
		RunE:  withUserHandler((*UserCommandHandler).SetPasswordCmd),
	}
	setPasswordCmd.Flags().String("email", "", "Email address of the account")
	setPasswordCmd.Flags().String("password", "", "New password, at least 12 characters (or set "+PasswordEnv+")")
	if err := setPasswordCmd.MarkFlagRequired("email"); err != nil {
		return fmt.Errorf("failed to mark email flag required: %w", err)
	}
	usersCmd.AddCommand(setPasswordCmd)

	rootCmd.AddCommand(usersCmd)
	return nil
}
