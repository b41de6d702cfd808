package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database URI
//	-db-name database name
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-images-region object storage region
//	-images-bucket object storage bucket
//	-images-endpoint object storage endpoint override
//	-images-access-key object storage access key
//	-images-secret-key object storage secret key
//	-images-public-base-url public base URL for uploaded avatars
//	-images-folder upload key prefix
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseURI string
	var databaseName string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var imagesRegion string
	var imagesBucket string
	var imagesEndpoint string
	var imagesAccessKey string
	var imagesSecretKey string
	var imagesPublicBaseURL string
	var imagesFolder string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseURI, "d", "", "Database URI")
	flag.StringVar(&databaseName, "db-name", "", "Database name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&imagesRegion, "images-region", "", "Object storage region")
	flag.StringVar(&imagesBucket, "images-bucket", "", "Object storage bucket")
	flag.StringVar(&imagesEndpoint, "images-endpoint", "", "Object storage endpoint override")
	flag.StringVar(&imagesAccessKey, "images-access-key", "", "Object storage access key")
	flag.StringVar(&imagesSecretKey, "images-secret-key", "", "Object storage secret key")
	flag.StringVar(&imagesPublicBaseURL, "images-public-base-url", "", "Public base URL for avatars")
	flag.StringVar(&imagesFolder, "images-folder", "", "Avatar upload key prefix")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				URI:      databaseURI,
				Database: databaseName,
			},
			Images: Images{
				Region:        imagesRegion,
				Bucket:        imagesBucket,
				Endpoint:      imagesEndpoint,
				AccessKey:     imagesAccessKey,
				SecretKey:     imagesSecretKey,
				PublicBaseURL: imagesPublicBaseURL,
				UploadFolder:  imagesFolder,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
