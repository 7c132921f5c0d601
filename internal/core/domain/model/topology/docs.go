// Package topology holds the routing network: transit hubs and the pickup
// points that belong to them. Both entities are created once at network setup
// and never change afterwards, which lets adapters cache them freely.
package topology
