package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/db/redis"
	"movie_catalog/model"
	errorHandler "movie_catalog/pkg/error"
	"strings"
	"time"
)

const (
	searchResultsCachePrefix = "omdbSearch:"
)

const searchResultsCacheDuration = 10 * time.Minute

//------------------------------------------
//------------------------------------------

func getCachedSearchResults(query string) ([]model.CandidateSummary, error) {
	key := searchResultsCachePrefix + strings.ToLower(query)
	result, err := redis.GetRedis(context.Background(), key)
	if err != nil && err.Error() != "redis: nil" {
		return nil, nil
	}
	if result != "" {
		var jsonData []model.CandidateSummary
		err = json.Unmarshal([]byte(result), &jsonData)
		if err != nil {
			return nil, err
		}
		return jsonData, nil
	}
	return nil, err
}

func setSearchResultsCache(query string, candidates []model.CandidateSummary) error {
	jsonData, err := json.Marshal(candidates)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving search results: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}

	key := searchResultsCachePrefix + strings.ToLower(query)
	err = redis.SetRedis(context.Background(), key, jsonData, searchResultsCacheDuration)
	if err != nil && err.Error() != "redis: nil" {
		errorMessage := fmt.Sprintf("Redis Error on saving search results: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
