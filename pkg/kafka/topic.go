package kafka

import "fmt"

// TopicPrefix namespaces every storefront topic.
const TopicPrefix = "luxe"

// Topic builds a topic name of the form "luxe.<domain>.<action>".
func Topic(domain, action string) string {
	return fmt.Sprintf("%s.%s.%s", TopicPrefix, domain, action)
}
