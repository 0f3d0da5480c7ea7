package collector

import (
	"context"
	"encoding/json"

	"github.com/qepting91/reddit-wiper/internal/domain"
)

const graphqlPath = "/svc/shreddit/graphql"

type deleteCommentInput struct {
	CommentID domain.CommentID `json:"commentId"`
}

type deleteCommentRequest struct {
	Operation string `json:"operation"`
	Variables struct {
		Input deleteCommentInput `json:"input"`
	} `json:"variables"`
	CSRFToken string `json:"csrf_token"`
}

type deleteCommentResponse struct {
	Data struct {
		DeleteComment struct {
			OK bool `json:"ok"`
		} `json:"deleteComment"`
	} `json:"data"`
}

// GraphQLDeleter deletes comments through the site's own mutation endpoint
// using the cookie session.
type GraphQLDeleter struct {
	session   *Session
	csrfToken string
}

func NewGraphQLDeleter(session *Session, csrfToken string) *GraphQLDeleter {
	return &GraphQLDeleter{session: session, csrfToken: csrfToken}
}

// Delete reports true only when the response carries data.deleteComment.ok
// set to JSON true. Any other body is a failed delete, not an error.
func (gd *GraphQLDeleter) Delete(ctx context.Context, id domain.CommentID) (bool, error) {
	req := deleteCommentRequest{Operation: "DeleteComment", CSRFToken: gd.csrfToken}
	req.Variables.Input.CommentID = id

	body, err := gd.session.postJSON(ctx, graphqlPath, req)
	if err != nil {
		return false, err
	}

	var resp deleteCommentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, nil
	}
	return resp.Data.DeleteComment.OK, nil
}
