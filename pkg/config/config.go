package config

import (
	"time"

	"github.com/spf13/viper"
	"liyu1981.xyz/energy-meter-service/pkg/common"
)

func Load() error {
	viper.SetDefault(common.EnvKeyPort, "4000")

	viper.SetDefault(common.EnvKeyMongoURI, "")
	viper.SetDefault(common.EnvKeyMongoDatabase, "energymeter")
	viper.SetDefault(common.EnvKeyMongoCollection, "energyreadings")
	viper.SetDefault(common.EnvKeyMongoConnectTimeout, "10s")

	viper.AutomaticEnv()
	return nil
}

func Port() string          { return viper.GetString(common.EnvKeyPort) }
func MongoURI() string      { return viper.GetString(common.EnvKeyMongoURI) }
func MongoDatabase() string { return viper.GetString(common.EnvKeyMongoDatabase) }
func MongoCollection() string {
	return viper.GetString(common.EnvKeyMongoCollection)
}

func MongoConnectTimeout() time.Duration {
	d := viper.GetDuration(common.EnvKeyMongoConnectTimeout)
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
