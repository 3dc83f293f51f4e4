package config

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (suite *ConfigTestSuite) TestValidateDatabaseConf() {
	conf := Database{
		Host:     "",
		Port:     "",
		Database: "",
		User:     "",
		Password: "",
	}

	err := validateDatabaseConf(conf)
	suite.Require().Error(err)
	conf.Host = "fake-host"

	err = validateDatabaseConf(conf)
	suite.Require().Error(err)

	conf.Port = "5432"
	err = validateDatabaseConf(conf)
	suite.Require().Error(err)

	conf.Database = "fake-database"
	err = validateDatabaseConf(conf)
	suite.Require().Error(err)

	conf.User = "fake-user"
	err = validateDatabaseConf(conf)
	suite.Require().Error(err)

	conf.Password = "fake-password"
	err = validateDatabaseConf(conf)
	suite.Require().NoError(err)
}

func (suite *ConfigTestSuite) TestValidateProvenanceConf() {
	conf := Provenance{
		LCD:             "",
		AccountPrefix:   "",
		ContractAddress: "",
	}

	_, err := validateProvenanceConf(conf)
	suite.Require().Error(err)

	conf.LCD = "https://api.provenance.io"
	_, err = validateProvenanceConf(conf)
	suite.Require().Error(err)

	conf.AccountPrefix = "pb"
	_, err = validateProvenanceConf(conf)
	suite.Require().Error(err)

	conf.ContractAddress = "fake-contract-address"
	validated, err := validateProvenanceConf(conf)
	suite.Require().NoError(err)
	suite.Require().Equal("https://api.provenance.io:443", validated.LCD, "default port is appended")
}

func (suite *ConfigTestSuite) TestValidateServerConf() {
	conf := Server{Port: 0}

	err := validateServerConf(conf)
	suite.Require().Error(err)

	conf.Port = 70000
	err = validateServerConf(conf)
	suite.Require().Error(err)

	conf.Port = 8080
	err = validateServerConf(conf)
	suite.Require().NoError(err)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
