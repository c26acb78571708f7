// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http based client used for liveness probes and page fetches
// - logger/logrus: JSON structured logger backed by logrus
// - logger/zap: JSON structured logger backed by zap
// - logger: Backend selection and optional lumberjack file rotation
// - metrics: Prometheus collectors on a private registry
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(5 * time.Second)
//	resp, err := client.Head(ctx, "https://example.com/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	log, closer := logger.New(logger.Options{Backend: "zap", Level: "info"})
//	defer closer.Close()
//	log.Info("Validating feeds", map[string]interface{}{
//	    "count": 3,
//	})
package infrastructure
