// Package twitter implements the publish gateway against the Twitter API
// using OAuth1 user authentication.
package twitter

import (
	"context"
	"fmt"

	gotwitter "github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"
	"github.com/rs/zerolog"

	"github.com/driplab/driptweet/internal/domain"
)

// Credentials are the four opaque secrets Twitter issues for a user
// application. They are passed in explicitly at construction and never read
// from ambient state.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// Complete reports whether all four secrets are present.
func (c Credentials) Complete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" &&
		c.AccessToken != "" && c.AccessSecret != ""
}

// Gateway posts to, and reads back from, a single Twitter account.
type Gateway struct {
	client     *gotwitter.Client
	screenName string
	logger     zerolog.Logger
}

// NewGateway builds the OAuth1-signed client and verifies the credentials
// once to resolve the account's screen name.
func NewGateway(creds Credentials, logger zerolog.Logger) (*Gateway, error) {
	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := gotwitter.NewClient(httpClient)

	user, _, err := client.Accounts.VerifyCredentials(&gotwitter.AccountVerifyParams{
		SkipStatus: gotwitter.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	logger.Debug().Str("screen_name", user.ScreenName).Msg("twitter credentials verified")
	return &Gateway{client: client, screenName: user.ScreenName, logger: logger}, nil
}

// ScreenName returns the account the gateway posts as.
func (g *Gateway) ScreenName() string { return g.screenName }

// LastPublished returns the newest post on the account, retweets included:
// whether that post carries a sequence label is for the caller to decide.
func (g *Gateway) LastPublished(ctx context.Context) (domain.LastPublished, error) {
	tweets, _, err := g.client.Timelines.UserTimeline(&gotwitter.UserTimelineParams{
		ScreenName: g.screenName,
		Count:      1,
		TweetMode:  "extended",
	})
	if err != nil {
		return domain.LastPublished{}, fmt.Errorf("user timeline: %w", err)
	}
	if len(tweets) == 0 {
		return domain.LastPublished{}, nil
	}
	return domain.LastPublished{Text: tweetText(tweets[0]), Exists: true}, nil
}

// Publish posts body as a status update. In simulate mode no request is
// made; the call still reports success.
func (g *Gateway) Publish(ctx context.Context, body string, simulate bool) error {
	if simulate {
		g.logger.Info().Str("body", body).Msg("simulated publish")
		return nil
	}
	tweet, _, err := g.client.Statuses.Update(body, nil)
	if err != nil {
		return fmt.Errorf("status update: %w", err)
	}
	g.logger.Debug().Int64("tweet_id", tweet.ID).Msg("status posted")
	return nil
}

// tweetText prefers the extended-mode full text, which the API omits for
// classic-mode responses.
func tweetText(t gotwitter.Tweet) string {
	if t.FullText != "" {
		return t.FullText
	}
	return t.Text
}
