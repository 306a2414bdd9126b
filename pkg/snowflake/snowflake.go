package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenRequestID 生成请求ID，用于日志串联
func GenRequestID() string {
	return node.Generate().Base58()
}
