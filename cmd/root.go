/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daskott/clientdir/colors"
	devConfig "github.com/Daskott/clientdir/dev/config"
	"github.com/Daskott/clientdir/logger"
	"github.com/Daskott/clientdir/models"
	"github.com/Daskott/clientdir/shared"
	"github.com/Daskott/clientdir/utils"
	"github.com/Daskott/clientdir/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	config   *viper.Viper
	isDevEnv bool

	logg *zap.SugaredLogger = logger.NewLogger(false, "")

	warningLabel = colors.Yellow("Warning:")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd = createRootCmd()
	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "clientdir",
		Short: `clientdir is a CLI for managing a small directory of clients
and their phone numbers, stored in postgres or an encrypted sqlite database.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.clientdir.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	cmd.AddCommand(
		createResetCmd(),
		createAddCmd(),
		createAddPhoneCmd(),
		createUpdateCmd(),
		createDeletePhoneCmd(),
		createDeleteCmd(),
		createFindCmd(),
		createDemoCmd(),
		createServerCmd(),
	)

	return cmd
}

// openStore loads the app config & connects to the configured database.
// The caller is responsible for closing the store
func openStore() (*models.Store, *shared.Config, error) {
	appConfig, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logg = logger.NewLogger(isDevEnv, appConfig.Log.Level)
	models.SetLogger(logg)

	store, err := models.Open(*appConfig)
	if err != nil {
		return nil, nil, err
	}

	return store, appConfig, nil
}

// loadConfig reads in the config file and ENV variables if set.
func loadConfig() (*shared.Config, error) {
	config = viper.New()
	config.SetConfigType("yaml")
	setConfigDefaults(config)

	// BIND database.password to PGPASSWORD env, so the value doesn't need to be
	// stored in the .clientdir.yaml config, but can be read from the system ENV var.
	// FYI: The env var overrides whatever is in the config file
	config.BindEnv("database.password", "PGPASSWORD")

	config.SetEnvPrefix("CLIENTDIR")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv() // read in environment variables that match

	switch {
	case isDevEnv:
		if err := config.ReadConfig(strings.NewReader(devConfig.CONFIG_YML)); err != nil {
			return nil, errors.Wrap(err, "error reading dev config")
		}
	default:
		if err := readConfigFile(config); err != nil {
			return nil, err
		}
	}

	appConfig := shared.Config{}
	if err := config.Unmarshal(&appConfig); err != nil {
		return nil, errors.Wrap(err, "error parsing config")
	}

	if err := appConfig.Validate(); err != nil {
		return nil, formattedError("invalid config in %s: %v", config.ConfigFileUsed(), err)
	}

	return &appConfig, nil
}

func readConfigFile(config *viper.Viper) error {
	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// If config file is not found, create one using defaultConfigValue
		configFilePath := filepath.Join(configDir, ".clientdir.yaml")
		exists, err := utils.FileExist(configFilePath)
		if err != nil {
			return err
		}

		if !exists {
			err = os.WriteFile(configFilePath, []byte(defaultConfigValue()), 0600)
			if err != nil {
				return err
			}
			logg.Infof("created default config in %s", configFilePath)
		}

		config.SetConfigFile(configFilePath)
	}

	if err := config.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "error reading config file %s", config.ConfigFileUsed())
	}

	return nil
}

func setConfigDefaults(config *viper.Viper) {
	config.SetDefault("database.driver", shared.POSTGRES_DRIVER)
	config.SetDefault("database.host", "localhost")
	config.SetDefault("database.port", models.DEFAULT_POSTGRES_PORT)
	config.SetDefault("database.user", "postgres")
	config.SetDefault("database.name", "clients")
	config.SetDefault("database.sslMode", "disable")
	config.SetDefault("sqlite.passPhrase", "")
	config.SetDefault("sqlite.dir", "")
	config.SetDefault("log.level", "")
	config.SetDefault("log.sqlLevel", "silent")
	config.SetDefault("server.port", 3000)
}

// defaultConfigValue returns the default content for .clientdir.yaml
func defaultConfigValue() string {
	return `# Database used to store clients & their phone numbers.
# driver is either 'postgres' or 'sqlite'
database:
  driver: postgres
  host: localhost
  port: 5432
  user: postgres
  # Prefer setting the PGPASSWORD env var over storing the password here
  password:
  name: clients
  sslMode: disable

# Only used when database.driver is 'sqlite'.
# The database is stored in <dir>/db & encrypted with passPhrase
sqlite:
  passPhrase:
  dir:

log:
  level: info
  # sql statements are logged at this level i.e. silent, error, warn or info
  sqlLevel: silent

server:
  port: 3000
`
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
