package bootstrap

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Env is the resolved configuration of one loader run. It is built
// once from the environment (plus an optional .env file) and passed
// around by value afterwards.
type Env struct {
	MongoURI string
	MongoDB  string

	ESHTTPHosts      []string
	ESTransportHosts []string
	ESIndex          string
	ESClusterName    string

	MovieFile  string
	RatingFile string
	TagFile    string

	Parallelism    int
	PublishTimeout time.Duration
}

func NewEnv() (*Env, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	// A .env file is a development convenience; the environment alone
	// is enough in deployment.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	v.AutomaticEnv()

	v.SetDefault("MONGO_DB", "recommender")
	v.SetDefault("ES_INDEX", "Movie")
	v.SetDefault("ES_CLUSTER_NAME", "es-cluster")
	v.SetDefault("MOVIE_FILE", "movies.csv")
	v.SetDefault("RATING_FILE", "ratings.csv")
	v.SetDefault("TAG_FILE", "tags.csv")
	v.SetDefault("PARALLELISM", 4)
	v.SetDefault("PUBLISH_TIMEOUT_SEC", 120)

	env := &Env{
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDB:          v.GetString("MONGO_DB"),
		ESHTTPHosts:      splitHosts(v.GetString("ES_HTTP_HOSTS")),
		ESTransportHosts: splitHosts(v.GetString("ES_TRANSPORT_HOSTS")),
		ESIndex:          v.GetString("ES_INDEX"),
		ESClusterName:    v.GetString("ES_CLUSTER_NAME"),
		MovieFile:        v.GetString("MOVIE_FILE"),
		RatingFile:       v.GetString("RATING_FILE"),
		TagFile:          v.GetString("TAG_FILE"),
		Parallelism:      v.GetInt("PARALLELISM"),
		PublishTimeout:   time.Duration(v.GetInt("PUBLISH_TIMEOUT_SEC")) * time.Second,
	}

	if env.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if len(env.ESHTTPHosts) == 0 {
		return nil, errors.New("ES_HTTP_HOSTS is required")
	}
	return env, nil
}

func splitHosts(s string) []string {
	var hosts []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
