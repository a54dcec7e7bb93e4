package urls

// Links printed in troubleshooting hints

// JavaDownload is where to get a Java runtime for the server.
const JavaDownload = "https://adoptium.net/"

// ServerDownload is the official server jar download page.
const ServerDownload = "https://www.minecraft.net/en-us/download/server"

// ServerSetupGuide covers running a dedicated server, including the
// command-line options msc passes.
const ServerSetupGuide = "https://minecraft.wiki/w/Tutorials/Setting_up_a_server"
