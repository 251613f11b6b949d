package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
)

// Matches watch, embed, shorthand and youtu.be URL forms
var youtubeIDPattern = regexp.MustCompile(`(?:https?:\/\/)?(?:www\.)?(?:youtube\.com\/(?:[^\/\n\s]+\/\S+\/|(?:v|e(?:mbed)?)\/|\S*?[?&]v=)|youtu\.be\/)([a-zA-Z0-9_-]{11})`)

var rawVideoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractYouTubeID pulls the 11-char video id out of a YouTube URL. A bare
// 11-char id is accepted as-is.
func ExtractYouTubeID(url string) (string, bool) {
	if m := youtubeIDPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	if rawVideoIDPattern.MatchString(url) {
		return url, true
	}
	return "", false
}

// FetchVideoTitle asks YouTube's oEmbed endpoint for the video title.
// Best effort only: callers fall back to their own title on error.
func FetchVideoTitle(videoID string) (string, error) {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"url":    "https://www.youtube.com/watch?v=" + videoID,
			"format": "json",
		}).
		Get("https://www.youtube.com/oembed")
	if err != nil {
		log.Printf("oEmbed lookup failed for %s: %v", videoID, err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("oEmbed lookup for %s returned %d", videoID, resp.StatusCode())
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", err
	}
	return payload.Title, nil
}
