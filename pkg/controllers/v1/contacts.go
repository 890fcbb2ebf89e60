package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/pkg/contacts"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/httputil"
	"github.com/pocketbook/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// RegisterContactRoutes registers the routes for contacts with
// the RouterGroup that is passed.
func (co Controller) RegisterContactRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsContactList)
		r.GET("", co.GetContacts)
		r.POST("", co.CreateContact)
	}

	// Contact with ID
	{
		r.OPTIONS("/:id", co.OptionsContactDetail)
		r.GET("/:id", co.GetContact)
		r.PATCH("/:id", co.UpdateContact)
		r.DELETE("/:id", co.DeleteContact)
		r.OPTIONS("/:id/favorite", co.OptionsContactFavorite)
		r.POST("/:id/favorite", co.ToggleContactFavorite)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contacts
// @Success		204
// @Router			/v1/contacts [options]
func (co Controller) OptionsContactList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contacts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		int	true	"ID of the contact"
// @Router			/v1/contacts/{id} [options]
func (co Controller) OptionsContactDetail(c *gin.Context) {
	if _, err := co.findContact(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contacts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		int	true	"ID of the contact"
// @Router			/v1/contacts/{id}/favorite [options]
func (co Controller) OptionsContactFavorite(c *gin.Context) {
	if _, err := co.findContact(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// findContact binds the ID from the URI and returns the contact without
// simulated latency.
func (co Controller) findContact(c *gin.Context) (models.Contact, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Contact{}, err
	}

	return co.Contacts.FindByID(c.Request.Context(), uri.ID)
}

// @Summary		Create contact
// @Description	Creates a new contact. Missing fields default to a personal contact born today.
// @Tags			Contacts
// @Produce		json
// @Success		201		{object}	ContactResponse
// @Failure		400		{object}	ContactResponse
// @Failure		500		{object}	ContactResponse
// @Failure		503		{object}	ContactResponse
// @Param			contact	body		ContactEditable	true	"Contact"
// @Router			/v1/contacts [post]
func (co Controller) CreateContact(c *gin.Context) {
	editable := defaultContactEditable(co.today())

	if err := httputil.BindData(c, &editable); err != nil {
		co.contactError(c, err)
		return
	}

	var contact models.Contact
	err := co.do(c, datasource.OperationSave, func(ctx context.Context) (err error) {
		contact, err = co.Contacts.Save(ctx, editable.apply(models.Contact{}))
		return
	})
	if err != nil {
		co.contactError(c, err)
		return
	}

	data := newContact(c, contact)
	c.JSON(http.StatusCreated, ContactResponse{Data: &data})
}

// @Summary		List contacts
// @Description	Returns a list of contacts sorted by ID
// @Tags			Contacts
// @Produce		json
// @Success		200			{object}	ContactListResponse
// @Failure		400			{object}	ContactListResponse
// @Failure		500			{object}	ContactListResponse
// @Failure		503			{object}	ContactListResponse
// @Router			/v1/contacts [get]
// @Param			favorite	query	bool	false	"Is the contact a favorite?"
// @Param			type		query	string	false	"Filter by type"
// @Param			name		query	string	false	"Glob pattern for the full name, e.g. An*"
// @Param			search		query	string	false	"Fuzzy search on the full name"
// @Param			group		query	string	false	"Set to 'initial' to group the contacts by their initial"
// @Param			offset		query	uint	false	"The offset of the first Contact returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Contacts to return. Defaults to 50."
func (co Controller) GetContacts(c *gin.Context) {
	var filter ContactQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContactListResponse{
			Error: &s,
		})
		return
	}

	if filter.Group != "" && filter.Group != "initial" {
		s := errGroupInvalid.Error()
		c.JSON(http.StatusBadRequest, ContactListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	var all []models.Contact
	err := co.do(c, datasource.OperationLoad, func(ctx context.Context) (err error) {
		all, err = co.Contacts.FindAll(ctx)
		return
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactListResponse{
			Error: &s,
		})
		return
	}

	matching := make([]models.Contact, 0, len(all))
	for _, contact := range all {
		if slices.Contains(setFields, "Favorite") && contact.IsFavorite != filter.Favorite {
			continue
		}

		if filter.Type != "" && contact.Type != filter.Type {
			continue
		}

		if filter.Search != "" && !contacts.Matches(contact, filter.Search) {
			continue
		}

		matching = append(matching, contact)
	}

	if filter.Name != "" {
		matching = contacts.MatchName(matching, filter.Name)
	}

	// Default to 50 Contacts and set the limit
	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	page, pagination := paginate(matching, filter.Offset, limit)

	response := ContactListResponse{
		Data:       newContacts(c, page),
		Pagination: &pagination,
	}

	if filter.Group == "initial" {
		response.Groups = make([]ContactGroup, 0)
		for _, group := range contacts.GroupByInitial(page) {
			response.Groups = append(response.Groups, ContactGroup{
				Initial:  group.Initial,
				Contacts: newContacts(c, group.Contacts),
			})
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary		Get contact
// @Description	Returns a specific contact
// @Tags			Contacts
// @Produce		json
// @Success		200	{object}	ContactResponse
// @Failure		400	{object}	ContactResponse
// @Failure		404	{object}	ContactResponse
// @Failure		503	{object}	ContactResponse
// @Param			id	path		int	true	"ID of the contact"
// @Router			/v1/contacts/{id} [get]
func (co Controller) GetContact(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		co.contactError(c, err)
		return
	}

	var contact models.Contact
	err := co.do(c, datasource.OperationLoad, func(ctx context.Context) (err error) {
		contact, err = co.Contacts.FindByID(ctx, uri.ID)
		return
	})
	if err != nil {
		co.contactError(c, err)
		return
	}

	data := newContact(c, contact)
	c.JSON(http.StatusOK, ContactResponse{Data: &data})
}

// @Summary		Update contact
// @Description	Updates a contact. Only values to be updated need to be specified.
// @Tags			Contacts
// @Produce		json
// @Success		200		{object}	ContactResponse
// @Failure		400		{object}	ContactResponse
// @Failure		404		{object}	ContactResponse
// @Failure		500		{object}	ContactResponse
// @Failure		503		{object}	ContactResponse
// @Param			id		path		int				true	"ID of the contact"
// @Param			contact	body		ContactEditable	true	"Contact"
// @Router			/v1/contacts/{id} [patch]
func (co Controller) UpdateContact(c *gin.Context) {
	contact, err := co.findContact(c)
	if err != nil {
		co.contactError(c, err)
		return
	}

	editable := newContactEditable(contact)
	if err := httputil.BindData(c, &editable); err != nil {
		co.contactError(c, err)
		return
	}

	err = co.do(c, datasource.OperationSave, func(ctx context.Context) (err error) {
		contact, err = co.Contacts.Save(ctx, editable.apply(contact))
		return
	})
	if err != nil {
		co.contactError(c, err)
		return
	}

	data := newContact(c, contact)
	c.JSON(http.StatusOK, ContactResponse{Data: &data})
}

// @Summary		Toggle favorite
// @Description	Flips the favorite flag of a contact. This is never delayed.
// @Tags			Contacts
// @Produce		json
// @Success		200	{object}	ContactResponse
// @Failure		400	{object}	ContactResponse
// @Failure		404	{object}	ContactResponse
// @Failure		500	{object}	ContactResponse
// @Param			id	path		int	true	"ID of the contact"
// @Router			/v1/contacts/{id}/favorite [post]
func (co Controller) ToggleContactFavorite(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		co.contactError(c, err)
		return
	}

	var contact models.Contact
	err := co.do(c, datasource.OperationToggle, func(ctx context.Context) error {
		found, err := co.Contacts.FindByID(ctx, uri.ID)
		if err != nil {
			return err
		}

		found.IsFavorite = !found.IsFavorite
		contact, err = co.Contacts.Save(ctx, found)
		return err
	})
	if err != nil {
		co.contactError(c, err)
		return
	}

	data := newContact(c, contact)
	c.JSON(http.StatusOK, ContactResponse{Data: &data})
}

// @Summary		Delete contact
// @Description	Deletes a contact
// @Tags			Contacts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Failure		503	{object}	httpError
// @Param			id	path		int	true	"ID of the contact"
// @Router			/v1/contacts/{id} [delete]
func (co Controller) DeleteContact(c *gin.Context) {
	contact, err := co.findContact(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.do(c, datasource.OperationDelete, func(ctx context.Context) error {
		return co.Contacts.Delete(ctx, contact.ID)
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// contactError writes the error response for a single contact.
func (co Controller) contactError(c *gin.Context, err error) {
	s := err.Error()
	errs := httputil.ValidationErrors(err)
	if len(errs) > 0 {
		s = httputil.ErrValidation.Error()
	}

	c.JSON(status(err), ContactResponse{
		Error:            &s,
		ValidationErrors: errs,
	})
}
