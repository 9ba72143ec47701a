package main

import (
	"fmt"

	"github.com/spf13/cobra"

	authapp "github.com/wyfcoding/poseidon/internal/auth/application"
	authdomain "github.com/wyfcoding/poseidon/internal/auth/domain"
	"github.com/wyfcoding/poseidon/internal/server"
	userapp "github.com/wyfcoding/poseidon/internal/user/application"
	usermysql "github.com/wyfcoding/poseidon/internal/user/infrastructure/persistence/mysql"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateFlags struct {
	username string
	password string
	fullname string
	role     string
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		role, err := authdomain.ParseRole(userCreateFlags.role)
		if err != nil {
			return err
		}

		rt, err := setup(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.close()

		ctx := cmd.Context()
		if rt.cfg.Database.AutoMigrate {
			if err := server.Migrate(ctx, rt.db.DB); err != nil {
				return err
			}
		}

		svc := userapp.NewUserService(
			usermysql.NewUserRepository(rt.db.DB),
			authapp.NewBcryptHasher(rt.cfg.Security.BcryptCost),
			rt.publisher,
			rt.metrics,
		)
		user, err := svc.Create(ctx, nil, userapp.CreateUserCommand{
			Username: userCreateFlags.username,
			Password: userCreateFlags.password,
			Fullname: userCreateFlags.fullname,
			Role:     role,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id=%d, role=%s)\n", user.Username, user.ID, user.Role)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&userCreateFlags.username, "username", "", "login name, letters and digits only")
	f.StringVar(&userCreateFlags.password, "password", "", "at least 8 characters with an uppercase letter and a digit")
	f.StringVar(&userCreateFlags.fullname, "fullname", "", "display name")
	f.StringVar(&userCreateFlags.role, "role", string(authdomain.RoleUser), "ADMIN or USER")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")
	_ = userCreateCmd.MarkFlagRequired("fullname")
	userCmd.AddCommand(userCreateCmd)
}
