package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyMongoURI            string = "MONGODB_URI"
	EnvKeyMongoDatabase       string = "MONGODB_DB"
	EnvKeyMongoCollection     string = "MONGODB_COLLECTION"
	EnvKeyMongoConnectTimeout string = "MONGODB_CONNECT_TIMEOUT"

	EnvKeyPort   string = "PORT"
	EnvKeyLogDir string = "LOG_DIR"

	LoggerNameMeterCore     string = "meter_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameStorage       string = "storage"

	LoggerFieldMeterCategory     string = "category"
	LoggerCategoryMeterReading   string = "reading"
	LoggerCategoryMeterQuery     string = "query"
	LoggerCategoryStorageConnect string = "connection"
)
