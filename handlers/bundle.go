package handlers

// HandlerBundle aggregates the handlers the router registers.
type HandlerBundle struct {
	Business     *BusinessHandler
	Post         *PostHandler
	BusinessTags *TagHandler
	PostTags     *TagHandler
}
