// Package species is a read-through proxy for the Atlas of Living Australia
// taxonomy services. No caching, no retries; failures surface to the caller.
package species

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var ErrNotFound = errors.New("species not found")

type Suggestion struct {
	ScientificName string   `json:"scientificName"`
	GUID           *string  `json:"guid"`
	CommonName     *string  `json:"commonName"`
	Rank           *string  `json:"rank"`
	MatchedNames   []string `json:"matchedNames"`
}

type Detail struct {
	ScientificName string  `json:"scientificName"`
	CommonName     *string `json:"commonName"`
	ImageURL       *string `json:"imageUrl"`
	ThumbnailURL   *string `json:"thumbnailUrl"`
}

type Client struct {
	http       *http.Client
	searchBase string
	bieBase    string
	imagesBase string
}

func NewClient(searchBase, bieBase, imagesBase string) *Client {
	return &Client{
		http:       &http.Client{Timeout: 10 * time.Second},
		searchBase: searchBase,
		bieBase:    bieBase,
		imagesBase: imagesBase,
	}
}

type autoCompleteResponse struct {
	AutoCompleteList []struct {
		Name         string   `json:"name"`
		GUID         string   `json:"guid"`
		CommonName   string   `json:"commonName"`
		RankString   string   `json:"rankString"`
		MatchedNames []string `json:"matchedNames"`
	} `json:"autoCompleteList"`
}

// Search autocompletes taxon names. Queries shorter than two characters
// return an empty slice without calling upstream.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	if len(query) < 2 {
		return []Suggestion{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	u := c.searchBase + "/search/auto?q=" + url.QueryEscape(query) +
		"&idxType=TAXON&limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("species search: unexpected status %d", resp.StatusCode)
	}

	var body autoCompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(body.AutoCompleteList))
	for _, item := range body.AutoCompleteList {
		s := Suggestion{
			ScientificName: item.Name,
			GUID:           strPtrOrNil(item.GUID),
			CommonName:     strPtrOrNil(item.CommonName),
			Rank:           strPtrOrNil(item.RankString),
			MatchedNames:   item.MatchedNames,
		}
		if s.MatchedNames == nil {
			s.MatchedNames = []string{}
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}

type bieSpeciesResponse struct {
	NameString   string `json:"nameString"`
	TaxonConcept struct {
		NameString string `json:"nameString"`
	} `json:"taxonConcept"`
	CommonNames []struct {
		NameString string `json:"nameString"`
	} `json:"commonNames"`
	ImageIdentifier string `json:"imageIdentifier"`
}

// Get fetches taxon detail by GUID and resolves image URLs from the
// imageIdentifier when present.
func (c *Client) Get(ctx context.Context, guid string) (*Detail, error) {
	u := c.bieBase + "/species/" + url.PathEscape(guid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	var body bieSpeciesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	detail := &Detail{ScientificName: body.TaxonConcept.NameString}
	if detail.ScientificName == "" {
		detail.ScientificName = body.NameString
	}
	if len(body.CommonNames) > 0 {
		detail.CommonName = strPtrOrNil(body.CommonNames[0].NameString)
	}
	if body.ImageIdentifier != "" {
		imageURL := c.imagesBase + "/" + body.ImageIdentifier
		thumbURL := c.imagesBase + "/proxyImageThumbnail?imageId=" + url.QueryEscape(body.ImageIdentifier)
		detail.ImageURL = &imageURL
		detail.ThumbnailURL = &thumbURL
	}
	return detail, nil
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
