// Package promptlab is an embeddable, in-process prompt store.
//
// It runs the same use cases as the promptlab HTTP server against a private
// in-memory storage, for programs and tests that want prompt management
// without a network hop. Nothing is persisted: a Client's data lives as long
// as the Client does.
//
//	client, _ := promptlab.New(promptlab.WithUncategorizedSeed())
//
//	col, _ := client.Collections().Create(ctx, "Writing", "drafting helpers")
//	p, _ := client.Prompts().Create(ctx, promptlab.PromptInput{
//	    Title:        "Summarize",
//	    Content:      "Summarize the following text: {{text}}",
//	    CollectionID: col.ID,
//	})
//
//	title := "Summarize briefly"
//	p, _ = client.Prompts().Patch(ctx, p.ID, promptlab.PromptPatch{Title: &title})
//
//	hits, _ := client.Prompts().List(ctx, promptlab.ListFilter{Query: "summar"})
//
// Deleting a collection moves its prompts to the Uncategorized collection.
package promptlab
