package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherFetcher WeatherFetcher

	// Storage
	ObservationRepository ObservationRepository

	// Pipeline
	RunLock         RunLock
	PipelineMetrics PipelineMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	HealthChecker  SystemHealthChecker
	Logger         Logger
}
