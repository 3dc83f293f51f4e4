package config

// ServeConfig carries everything the HTTP service needs: the state database,
// the Provenance LCD node, the listen port, and the optional redis activity
// feed.
type ServeConfig struct {
	Database   Database
	Log        log
	Provenance Provenance
	Server     Server
	Redis      RedisConf
}

// FeedEnabled reports whether a redis activity feed should be wired in. The
// "-" address disables it.
func (conf *ServeConfig) FeedEnabled() bool {
	return conf.Redis.Addr != "" && conf.Redis.Addr != "-"
}

func (conf *ServeConfig) Validate() error {
	err := validateDatabaseConf(conf.Database)
	if err != nil {
		return err
	}

	provenanceConf, err := validateProvenanceConf(conf.Provenance)
	if err != nil {
		return err
	}

	conf.Provenance = provenanceConf

	return validateServerConf(conf.Server)
}

func CheckSuperfluousServeKeys(keys []string) []string {
	validKeys := make(map[string]struct{})

	addDatabaseConfigKeys(validKeys)
	addLogConfigKeys(validKeys)
	addProvenanceConfigKeys(validKeys)
	addServerConfigKeys(validKeys)
	addRedisConfigKeys(validKeys)

	// Check keys
	ignoredKeys := make([]string, 0)
	for _, key := range keys {
		if _, ok := validKeys[key]; !ok {
			ignoredKeys = append(ignoredKeys, key)
		}
	}

	return ignoredKeys
}
