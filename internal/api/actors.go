package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/FELTRINCyril/cinebase/internal/model"
)

// ListActors fetches actors matching the filter
func (c *Client) ListActors(ctx context.Context, filter model.ActorFilter) ([]model.Actor, error) {
	var actors []model.Actor
	if err := c.getJSON(ctx, "list_actors", "/api/actors", filter.Values(), &actors); err != nil {
		return nil, err
	}
	return actors, nil
}

// GetActor fetches a single actor by id
func (c *Client) GetActor(ctx context.Context, id string) (model.Actor, error) {
	var actor model.Actor
	if err := c.getJSON(ctx, "get_actor", "/api/actors/"+url.PathEscape(id), nil, &actor); err != nil {
		return model.Actor{}, err
	}
	return actor, nil
}

// CreateActor creates a new actor record and returns it with its assigned id
func (c *Client) CreateActor(ctx context.Context, in model.ActorInput) (model.Actor, error) {
	// The backend rejects null link lists
	if in.Filmographie == nil {
		in.Filmographie = []string{}
	}

	var actor model.Actor
	if err := c.sendJSON(ctx, "create_actor", http.MethodPost, "/api/actors", in, &actor); err != nil {
		return model.Actor{}, err
	}
	return actor, nil
}

// UpdateActor rewrites an existing actor record and returns the stored state
func (c *Client) UpdateActor(ctx context.Context, id string, in model.ActorInput) (model.Actor, error) {
	if in.Filmographie == nil {
		in.Filmographie = []string{}
	}

	var actor model.Actor
	if err := c.sendJSON(ctx, "update_actor", http.MethodPut, "/api/actors/"+url.PathEscape(id), in, &actor); err != nil {
		return model.Actor{}, err
	}
	return actor, nil
}

// DeleteActor removes an actor record
func (c *Client) DeleteActor(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete_actor", http.MethodDelete, "/api/actors/"+url.PathEscape(id), nil, nil, "")
	return err
}

// UploadActorPhoto attaches a profile photo to an actor and returns the
// served photo path
func (c *Client) UploadActorPhoto(ctx context.Context, id, filename string, photo io.Reader) (string, error) {
	return c.uploadPhoto(ctx, "upload_actor_photo", "/api/actors/"+url.PathEscape(id)+"/photo", filename, photo)
}
