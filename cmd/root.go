package cmd

import (
	"os"
	"strings"
	"time"

	globalConfig "github.com/dfjacobs/tropo-gateway/config"
	domainHealth "github.com/dfjacobs/tropo-gateway/domains/health"
	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	"github.com/dfjacobs/tropo-gateway/infrastructure/tropo"
	"github.com/dfjacobs/tropo-gateway/pkg/utils"
	"github.com/dfjacobs/tropo-gateway/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	tropoClient *tropo.Client

	sessionUsecase domainSession.ISessionUsecase
	healthUsecase  domainHealth.IHealthUsecase
)

var rootCmd = &cobra.Command{
	Short: "Tropo session control gateway",
	Long: `HTTP gateway for controlling active Tropo voice/IM sessions:
raise signals on running sessions and create new outbound sessions over the Tropo session API.`,
}

func init() {
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig loads configuration from environment variables
func initEnvConfig() {
	if envPort := viper.GetString("app_port"); envPort != "" {
		globalConfig.AppPort = envPort
	}
	if envDebug := viper.GetBool("app_debug"); envDebug {
		globalConfig.AppDebug = envDebug
	}
	envBasicAuth := viper.GetString("app_basic_auth")
	if envBasicAuth == "" {
		envBasicAuth = os.Getenv("APP_BASIC_AUTH")
	}
	if envBasicAuth != "" {
		credential := strings.Split(envBasicAuth, ",")
		globalConfig.AppBasicAuthCredential = credential
	}
	if envBasePath := viper.GetString("app_base_path"); envBasePath != "" {
		globalConfig.AppBasePath = envBasePath
	}

	if envToken := viper.GetString("tropo_api_token"); envToken != "" {
		globalConfig.TropoAPIToken = envToken
	}
	if envBaseURL := viper.GetString("tropo_base_url"); envBaseURL != "" {
		globalConfig.TropoBaseURL = strings.TrimRight(envBaseURL, "/")
	}
	if envTimeout := viper.GetInt("tropo_http_timeout_seconds"); envTimeout > 0 {
		globalConfig.TropoHTTPTimeout = time.Duration(envTimeout) * time.Second
	}
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.AppPort,
		"port", "p",
		globalConfig.AppPort,
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&globalConfig.AppDebug,
		"debug", "d",
		globalConfig.AppDebug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&globalConfig.AppBasicAuthCredential,
		"basic-auth", "b",
		globalConfig.AppBasicAuthCredential,
		"basic auth credential | -b=yourUsername:yourPassword",
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.AppBasePath,
		"base-path", "",
		globalConfig.AppBasePath,
		`base path for subpath deployment --base-path <string> | example: --base-path="/tropo"`,
	)

	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.TropoAPIToken,
		"tropo-token", "",
		globalConfig.TropoAPIToken,
		`tropo api token used for session creation and signaling --tropo-token <string>`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.TropoBaseURL,
		"tropo-base-url", "",
		globalConfig.TropoBaseURL,
		`tropo api base url --tropo-base-url <string> | example: --tropo-base-url="https://api.tropo.com/1.0"`,
	)
}

func initApp() {
	if globalConfig.AppDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if strings.TrimSpace(globalConfig.TropoAPIToken) == "" {
		logrus.Warn("[APP] TROPO_API_TOKEN is not set; signal and session-creation calls will fail until it is configured")
	}

	tropoClient = tropo.NewClient(
		globalConfig.TropoAPIToken,
		globalConfig.TropoBaseURL,
		globalConfig.TropoHTTPTimeout,
	)

	sessionUsecase = usecase.NewSessionService(tropoClient)
	healthUsecase = usecase.NewHealthService()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
