package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/provlabs/funding-trading-bridge/util"
	"github.com/spf13/cobra"
)

// These configs are used across multiple commands, and are not specific to a single command
type log struct {
	Level  string
	Path   string
	Pretty bool
}

type Database struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	LogLevel string `mapstructure:"log-level"`
}

type Provenance struct {
	LCD             string `mapstructure:"lcd"`
	AccountPrefix   string `mapstructure:"account-prefix"`
	ContractAddress string `mapstructure:"contract-address"`
}

type Server struct {
	Port int
}

type RedisConf struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"psw"`
}

func SetupLogFlags(logConf *log, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logConf.Level, "log.level", "info", "log level")
	cmd.PersistentFlags().BoolVar(&logConf.Pretty, "log.pretty", false, "pretty logs")
	cmd.PersistentFlags().StringVar(&logConf.Path, "log.path", "", "log path (default is $HOME/.funding-trading-bridge/logs.txt")
}

func SetupDatabaseFlags(databaseConf *Database, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&databaseConf.Host, "database.host", "", "database host")
	cmd.PersistentFlags().StringVar(&databaseConf.Port, "database.port", "5432", "database port")
	cmd.PersistentFlags().StringVar(&databaseConf.Database, "database.database", "", "database name")
	cmd.PersistentFlags().StringVar(&databaseConf.User, "database.user", "", "database user")
	cmd.PersistentFlags().StringVar(&databaseConf.Password, "database.password", "", "database password")
	cmd.PersistentFlags().StringVar(&databaseConf.LogLevel, "database.log-level", "", "database loglevel")
}

func SetupProvenanceFlags(provenanceConf *Provenance, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&provenanceConf.LCD, "provenance.lcd", "", "node LCD endpoint")
	cmd.PersistentFlags().StringVar(&provenanceConf.AccountPrefix, "provenance.account-prefix", "pb", "bech32 account prefix")
	cmd.PersistentFlags().StringVar(&provenanceConf.ContractAddress, "provenance.contract-address", "", "account the bridge holds deposits under")
}

func SetupServerFlags(serverConf *Server, cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&serverConf.Port, "server.port", 8080, "inbound http api port")
}

func SetupRedisFlags(redisConf *RedisConf, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&redisConf.Addr, "redis.addr", "-", "redis address for the activity feed ('-' disables the feed)")
	cmd.PersistentFlags().StringVar(&redisConf.Password, "redis.psw", "", "redis password")
}

func validateDatabaseConf(dbConf Database) error {
	if util.StrNotSet(dbConf.Host) {
		return errors.New("database host must be set")
	}
	if util.StrNotSet(dbConf.Port) {
		return errors.New("database port must be set")
	}
	if util.StrNotSet(dbConf.Database) {
		return errors.New("database name (i.e. database) must be set")
	}
	if util.StrNotSet(dbConf.User) {
		return errors.New("database user must be set")
	}
	if util.StrNotSet(dbConf.Password) {
		return errors.New("database password must be set")
	}

	return nil
}

func validateProvenanceConf(provenanceConf Provenance) (Provenance, error) {
	if util.StrNotSet(provenanceConf.LCD) {
		return provenanceConf, errors.New("provenance lcd must be set")
	}
	// add port if not set
	if strings.Count(provenanceConf.LCD, ":") != 2 {
		if strings.HasPrefix(provenanceConf.LCD, "https:") {
			provenanceConf.LCD = fmt.Sprintf("%s:443", provenanceConf.LCD)
		} else if strings.HasPrefix(provenanceConf.LCD, "http:") {
			provenanceConf.LCD = fmt.Sprintf("%s:80", provenanceConf.LCD)
		}
	}

	if util.StrNotSet(provenanceConf.AccountPrefix) {
		return provenanceConf, errors.New("provenance account-prefix must be set")
	}
	if util.StrNotSet(provenanceConf.ContractAddress) {
		return provenanceConf, errors.New("provenance contract-address must be set")
	}
	return provenanceConf, nil
}

func validateServerConf(serverConf Server) error {
	if serverConf.Port < 1 || serverConf.Port > 65535 {
		return errors.New("server port must be between 1 and 65535")
	}
	return nil
}

// Reads the Viper mapstructure tag to get the valid keys for a given config struct
func getValidConfigKeys(section any, baseName string) (keys []string) {
	v := reflect.ValueOf(section)
	typeOfS := v.Type()

	if baseName == "" {
		baseName = strings.ToLower(typeOfS.Name())
	}

	for i := 0; i < v.NumField(); i++ {
		field := typeOfS.Field(i)

		// Hack to get around the fact that we have embedded struct inside a struct in some of our definitions
		if !strings.HasPrefix(field.Type.String(), "config.") {
			name := field.Tag.Get("mapstructure")
			if name == "" {
				name = field.Name
			}

			key := fmt.Sprintf("%v.%v", baseName, strings.ReplaceAll(strings.ToLower(name), " ", ""))
			keys = append(keys, key)
		}
	}
	return
}

func addDatabaseConfigKeys(validKeys map[string]struct{}) {
	for _, key := range getValidConfigKeys(Database{}, "") {
		validKeys[key] = struct{}{}
	}
}

func addLogConfigKeys(validKeys map[string]struct{}) {
	for _, key := range getValidConfigKeys(log{}, "") {
		validKeys[key] = struct{}{}
	}
}

func addProvenanceConfigKeys(validKeys map[string]struct{}) {
	for _, key := range getValidConfigKeys(Provenance{}, "") {
		validKeys[key] = struct{}{}
	}
}

func addServerConfigKeys(validKeys map[string]struct{}) {
	for _, key := range getValidConfigKeys(Server{}, "") {
		validKeys[key] = struct{}{}
	}
}

func addRedisConfigKeys(validKeys map[string]struct{}) {
	for _, key := range getValidConfigKeys(RedisConf{}, "redis") {
		validKeys[key] = struct{}{}
	}
}
