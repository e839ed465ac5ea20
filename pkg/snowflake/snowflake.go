package snowflake

import "github.com/bwmarrin/snowflake"

const (
	NodeAPI  int64 = 1
	NodeConn int64 = 2
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(NodeAPI)
}

// SetNode switches the generator node. api-server and conn-server both
// write rows, so each process runs on its own node id.
func SetNode(n int64) error {
	nd, err := snowflake.NewNode(n)
	if err != nil {
		return err
	}
	node = nd
	return nil
}

func GenID() int64 {
	return node.Generate().Int64()
}
