// Package web serves the PromptDeck front-end: a single page with a prompt
// form and a model selector, whose submission is forwarded to the OpenRouter
// client and rendered back as raw markdown plus converted HTML.
//
// All state a handler touches is request-scoped except the model catalog
// snapshot and the client, both safe for concurrent use. The page always
// renders; success, demo, and failure only change panel content.
package web
