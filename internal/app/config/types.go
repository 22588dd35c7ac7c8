package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	InternalConfig struct {
		App       App
		JWT       JWT
		Audit     Audit
		Minio     AppMinio
		RateLimit RateLimit
		Seed      Seed
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		EndpointPrefix              string
		CorsAllowedOrigins          []string
		MaxRequests                 int
		MaxTimeRequestsPerSeconds   int
		ShutdownTimeoutInSeconds    int
		RequestTimeoutInSeconds     int
		RequestBodyLimitInMegabyte  int
		WardLockExpirationInSeconds int
		LabReportMaxUploadSizeInMB  int64
		LabReportURLExpiryInMinutes int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Audit struct {
		QueueName           string
		DeadLetterQueueName string
		BufferSize          int
		PublishTimeoutInSec int
	}

	AppMinio struct {
		BucketName string
	}

	RateLimit struct {
		LoginRequestsPerMinute int
		LoginBurst             int
	}

	Seed struct {
		AdminUsername string
		AdminEmail    string
		AdminPassword string
		AdminFullName string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port               string
		Host               string
		Username           string
		Password           string
		VHost              string
		HeartbeatInSeconds int
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
