package ygoprodeck

import (
	"context"
	"fmt"

	perrors "github.com/matzehuels/cardpie/pkg/errors"
	"github.com/matzehuels/cardpie/pkg/integrations"
)

// DefaultBaseURL is the card info endpoint of the public API.
const DefaultBaseURL = "https://db.ygoprodeck.com/api/v7/cardinfo.php"

// Client looks up cards and downloads their artwork.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a YGOPRODeck client. Attempts is the number of tries per
// request; values below 1 mean no retries.
func NewClient(attempts int) *Client {
	headers := map[string]string{
		"User-Agent": integrations.UserAgent,
		"Accept":     "application/json",
	}
	return &Client{
		Client:  integrations.NewClient(headers, attempts),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL returns a copy of the client that queries baseURL instead of
// the public endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	return &Client{Client: c.Client, baseURL: baseURL}
}

// ImageURL returns the URL of the first artwork of the first card matching
// name (fuzzy "fname" match, as the service defines it).
func (c *Client) ImageURL(ctx context.Context, name string) (string, error) {
	var data cardInfoResponse
	url := fmt.Sprintf("%s?fname=%s", c.baseURL, integrations.URLEncode(name))
	if err := c.Get(ctx, url, &data); err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", unavailable(name, err)
	}

	if len(data.Data) == 0 || len(data.Data[0].CardImages) == 0 {
		return "", unavailable(name, nil)
	}
	imageURL := data.Data[0].CardImages[0].ImageURL
	if err := perrors.ValidateURL(imageURL); err != nil {
		return "", unavailable(name, err)
	}
	return imageURL, nil
}

// Download fetches the bytes at an image URL returned by [Client.ImageURL].
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	data, err := c.GetBytes(ctx, imageURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, perrors.Wrap(perrors.ErrCodeAssetUnavailable, err, "unable to download card image %s", imageURL)
	}
	return data, nil
}

func unavailable(name string, cause error) error {
	if cause == nil {
		return perrors.New(perrors.ErrCodeAssetUnavailable, "unable to find a card image for %s", name)
	}
	return perrors.Wrap(perrors.ErrCodeAssetUnavailable, cause, "unable to find a card image for %s", name)
}

type cardInfoResponse struct {
	Data []struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		CardImages []struct {
			ID       int    `json:"id"`
			ImageURL string `json:"image_url"`
		} `json:"card_images"`
	} `json:"data"`
}
