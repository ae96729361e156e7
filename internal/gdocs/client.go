package gdocs

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// Scopes requested for document creation and editing.
var Scopes = []string{
	docs.DocumentsScope,
	"https://www.googleapis.com/auth/drive.file",
}

// Credentials are OAuth tokens obtained by an external consent flow.
// ClientID and ClientSecret enable refreshing an expired access token.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	ClientSecret string    `json:"client_secret,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// TokenSource returns a refreshing source when client credentials and a
// refresh token are present, and a static one otherwise.
func (c Credentials) TokenSource(ctx context.Context) oauth2.TokenSource {
	token := &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       c.Expiry,
	}
	if c.RefreshToken == "" || c.ClientID == "" {
		return oauth2.StaticTokenSource(token)
	}
	cfg := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       Scopes,
	}
	return cfg.TokenSource(ctx, token)
}

// GoogleDocsAPI implements DocumentAPI on the Google Docs v1 REST API.
type GoogleDocsAPI struct {
	svc *docs.Service
}

// NewGoogleDocsAPI creates a client authorized with creds. Extra options are
// appended after the token source, so tests can point it at another endpoint.
func NewGoogleDocsAPI(ctx context.Context, creds Credentials, opts ...option.ClientOption) (*GoogleDocsAPI, error) {
	clientOpts := append([]option.ClientOption{option.WithTokenSource(creds.TokenSource(ctx))}, opts...)
	svc, err := docs.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	return &GoogleDocsAPI{svc: svc}, nil
}

// Create makes an empty document titled title.
func (g *GoogleDocsAPI) Create(ctx context.Context, title string) (string, error) {
	doc, err := g.svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if doc.DocumentId == "" {
		return "", fmt.Errorf("create response carried no document id")
	}
	return doc.DocumentId, nil
}

// BatchApply submits ops as a single documents.batchUpdate call.
func (g *GoogleDocsAPI) BatchApply(ctx context.Context, documentID string, ops []Operation) error {
	req := &docs.BatchUpdateDocumentRequest{Requests: ToRequests(ops)}
	_, err := g.svc.Documents.BatchUpdate(documentID, req).Context(ctx).Do()
	return err
}

// ToRequests converts operations into Docs API request objects, preserving order.
func ToRequests(ops []Operation) []*docs.Request {
	reqs := make([]*docs.Request, 0, len(ops))
	for _, op := range ops {
		switch o := op.(type) {
		case InsertText:
			reqs = append(reqs, &docs.Request{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: o.Index},
					Text:     o.Text,
				},
			})
		case UpdateParagraphStyle:
			reqs = append(reqs, &docs.Request{
				UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
					Range: toDocsRange(o.Range),
					ParagraphStyle: &docs.ParagraphStyle{
						NamedStyleType: o.Style.NamedStyleType,
						Alignment:      o.Style.Alignment,
					},
					Fields: o.Style.Fields(),
				},
			})
		case UpdateTextStyle:
			style := &docs.TextStyle{Bold: o.Style.Bold, Italic: o.Style.Italic}
			if o.Style.FontSizePt > 0 {
				style.FontSize = &docs.Dimension{Magnitude: o.Style.FontSizePt, Unit: "PT"}
			}
			reqs = append(reqs, &docs.Request{
				UpdateTextStyle: &docs.UpdateTextStyleRequest{
					Range:     toDocsRange(o.Range),
					TextStyle: style,
					Fields:    o.Style.Fields(),
				},
			})
		}
	}
	return reqs
}

func toDocsRange(r Range) *docs.Range {
	return &docs.Range{StartIndex: r.Start, EndIndex: r.End}
}
