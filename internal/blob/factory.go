package blob

import (
	"fmt"

	"github.com/BruksfildServices01/manicure-agenda/internal/config"
)

// Open escolhe o driver pelo BLOB_DRIVER (fs por padrão)
func Open(cfg *config.Config) (Store, error) {
	switch Driver(cfg.BlobDriver) {
	case DriverFS, "":
		return NewDirStore(cfg.BlobDir)
	case DriverS3:
		return NewS3Store(S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PathStyle: cfg.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown blob driver %s", cfg.BlobDriver)
	}
}
