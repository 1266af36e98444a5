// Package io writes binary trees and their layouts as JSON.
//
// [WriteJSON] emits a [Document]: the normalization summary, the tree as
// nested objects and optionally the computed layout.
//
//	{
//	  "mode": "proper",
//	  "before": 2,
//	  "after": 3,
//	  "placeholders": 1,
//	  "satisfied": true,
//	  "tree": {
//	    "value": "A",
//	    "left": {"value": "B"},
//	    "right": {"value": "?", "placeholder": true}
//	  },
//	  "layout": {"width": 1200, "height": 900, "depth": 2, "nodes": [...]}
//	}
//
// Layout nodes carry name-based UUIDs derived from their path, so the same
// slot keeps the same id across runs and formats.
package io
