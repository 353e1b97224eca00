package config

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		Settlement Settlement
	}
	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}
	JWT struct {
		Secret string
	}
	Settlement struct {
		LockTTLSeconds       int
		NotificationRole     string
		NotifyOnSettlement   bool
		RequestTimeoutSecond int
	}
)
